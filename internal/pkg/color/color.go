package color

import "fmt"

// HSLFor 根据标识符生成稳定的展示颜色，相同输入永远得到相同输出。
// 哈希按 32 位有符号整数折叠：hash = char + ((hash << 5) - hash)，
// 色相取 abs(hash) % 360，饱和度和亮度固定。空字符串对应色相 0。
func HSLFor(identifier string) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", HueFor(identifier))
}

// HueFor 返回 [0, 360) 区间的色相值
func HueFor(identifier string) int {
	var hash int32
	for _, ch := range identifier {
		hash = int32(ch) + ((hash << 5) - hash)
	}

	hue := int64(hash)
	if hue < 0 {
		hue = -hue
	}
	return int(hue % 360)
}
