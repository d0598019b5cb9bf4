package dto

// VoteDTO 投票请求，direction 取 +1/-1，null 或 0 表示显式撤票
type VoteDTO struct {
	Direction *int `json:"direction"`
}

// VoteResultDTO 投票结果
type VoteResultDTO struct {
	TotalVotes int `json:"total_votes"`
	Direction  int `json:"direction"`
}
