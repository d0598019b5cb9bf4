package consts

const (
	VoteUp      = 1
	VoteDown    = -1
	VoteRetract = 0
)

const (
	MembershipActionJoin  = "join"
	MembershipActionLeave = "leave"
)

const (
	CollectionUsers    = "users"
	CollectionPosts    = "posts"
	CollectionComments = "comments"
	CollectionDramas   = "dramas"
)
