package query

import "strconv"

// 分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params 列表查询参数
type Params struct {
	Page     int    // 页码，从1开始
	PageSize int    // 每页条数
	Paginate bool   // 请求是否显式携带page参数
	Keyword  string // 关键字
	SingerID *uint  // 歌手过滤（仅歌曲查询生效）
}

// ParseParams 从查询串解析分页与过滤参数
// 非法数字回退默认值，不作为错误处理
func ParseParams(pageStr, pageSizeStr, keyword, singerIDStr string) Params {
	p := Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Keyword:  keyword,
	}

	if pageStr != "" {
		p.Paginate = true
		if page, err := strconv.Atoi(pageStr); err == nil && page >= 1 {
			p.Page = page
		}
	}
	if pageSizeStr != "" {
		if size, err := strconv.Atoi(pageSizeStr); err == nil && size >= 1 {
			p.PageSize = size
		}
	}
	if singerIDStr != "" {
		if id, err := strconv.ParseUint(singerIDStr, 10, 32); err == nil {
			singerID := uint(id)
			p.SingerID = &singerID
		}
	}
	return p
}
