// Package query 实现目录表的通用查询：关键字过滤、分页、关联预加载。
// 各GET列表接口共用同一条查询路径，差异全部收敛在每个实体的Config里。
package query

import (
	"strings"

	"gorm.io/gorm"
)

// Preload 关联预加载配置
// Columns 非空时仅查询指定列（必须包含关联键）
type Preload struct {
	Name    string
	Columns []string
}

// Config 单个实体的查询策略
type Config struct {
	// KeywordColumn 关键字匹配的列名（大小写不敏感子串匹配）。
	// 为空且SongSearch为false时忽略keyword参数。
	KeywordColumn string

	// SongSearch 歌曲特例：关键字同时匹配歌曲名与歌手名，
	// 并支持singerId过滤（与关键字条件为AND关系）。
	SongSearch bool

	// Scope 固定过滤条件，如官方歌单：user_id IS NULL
	Scope func(tx *gorm.DB) *gorm.DB

	// Preloads 需要一并返回的关联
	Preloads []Preload
}

// List 执行列表查询，返回行集与分页前的总数
func List[T any](db *gorm.DB, cfg Config, p Params) ([]T, int64, error) {
	var zero T
	tx := db.Model(&zero)

	if cfg.Scope != nil {
		tx = cfg.Scope(tx)
	}

	// 关键字过滤
	if kw := strings.TrimSpace(p.Keyword); kw != "" {
		pattern := "%" + strings.ToLower(kw) + "%"
		if cfg.SongSearch {
			// 歌曲名或歌手名匹配（LEFT JOIN保证无歌手的歌曲也能按歌曲名命中）
			tx = tx.Joins("LEFT JOIN singers ON singers.id = songs.singer_id").
				Where("LOWER(songs.name) LIKE ? OR LOWER(singers.name) LIKE ?", pattern, pattern)
		} else if cfg.KeywordColumn != "" {
			tx = tx.Where("LOWER("+cfg.KeywordColumn+") LIKE ?", pattern)
		}
	}

	// 歌手过滤（仅歌曲查询支持）
	if cfg.SongSearch && p.SingerID != nil {
		tx = tx.Where("songs.singer_id = ?", *p.SingerID)
	}

	// 统计分页前总数
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 关联预加载
	for _, pre := range cfg.Preloads {
		tx = preload(tx, pre)
	}

	// 仅当请求显式携带page参数时才分页
	if p.Paginate {
		tx = tx.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
	}

	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Get 按主键查询单条记录，未命中返回gorm.ErrRecordNotFound
func Get[T any](db *gorm.DB, cfg Config, id uint) (*T, error) {
	tx := db
	for _, pre := range cfg.Preloads {
		tx = preload(tx, pre)
	}

	var row T
	if err := tx.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func preload(tx *gorm.DB, pre Preload) *gorm.DB {
	if len(pre.Columns) == 0 {
		return tx.Preload(pre.Name)
	}
	columns := pre.Columns
	return tx.Preload(pre.Name, func(db *gorm.DB) *gorm.DB {
		return db.Select(columns)
	})
}
