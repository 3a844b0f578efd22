package query

import (
	"fmt"
	"strings"
	"testing"

	"music-server/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试独立的内存库，cache=shared保证连接池内共享同一实例
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Admin{}, &model.Consumer{}, &model.Singer{}, &model.Song{},
		&model.SongList{}, &model.ListSong{}, &model.Collect{},
		&model.Comment{}, &model.Rank{}, &model.Swiper{},
	); err != nil {
		t.Fatalf("自动迁移失败: %v", err)
	}
	return db
}

func seedSongs(t *testing.T, db *gorm.DB) {
	t.Helper()

	singers := []model.Singer{
		{Name: "Lovebirds"},
		{Name: "周杰伦"},
	}
	if err := db.Create(&singers).Error; err != nil {
		t.Fatalf("写入歌手失败: %v", err)
	}

	songs := []model.Song{
		{Name: "Love Story", SingerID: &singers[1].ID, URL: "/media/1.mp3"},
		{Name: "晴天", SingerID: &singers[1].ID, URL: "/media/2.mp3"},
		{Name: "Morning", SingerID: &singers[0].ID, URL: "/media/3.mp3"},
		{Name: "无歌手之歌", URL: "/media/4.mp3"},
	}
	if err := db.Create(&songs).Error; err != nil {
		t.Fatalf("写入歌曲失败: %v", err)
	}
}

var songCfg = Config{
	SongSearch: true,
	Preloads:   []Preload{{Name: "Singer", Columns: []string{"id", "name"}}},
}

func TestListSongKeywordMatchesSongOrSingerName(t *testing.T) {
	db := newTestDB(t)
	seedSongs(t, db)

	// "love"（小写）应同时命中歌曲名"Love Story"和歌手"Lovebirds"的"Morning"
	rows, total, err := List[model.Song](db, songCfg, Params{Page: 1, PageSize: 10, Keyword: "love"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, 期望2", total)
	}

	names := map[string]bool{}
	for _, song := range rows {
		if names[song.Name] {
			t.Errorf("歌曲 %s 重复出现", song.Name)
		}
		names[song.Name] = true
	}
	if !names["Love Story"] || !names["Morning"] {
		t.Errorf("命中结果不含期望歌曲: %v", names)
	}
}

func TestListSongKeywordWithSingerFilter(t *testing.T) {
	db := newTestDB(t)
	seedSongs(t, db)

	var singer model.Singer
	if err := db.Where("name = ?", "周杰伦").First(&singer).Error; err != nil {
		t.Fatalf("查询歌手失败: %v", err)
	}

	// 关键字与singerId为AND关系：Lovebirds的Morning应被过滤掉
	singerID := singer.ID
	rows, total, err := List[model.Song](db, songCfg, Params{
		Page: 1, PageSize: 10, Keyword: "love", SingerID: &singerID,
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Name != "Love Story" {
		t.Fatalf("结果 = %v (total=%d), 期望仅Love Story", rows, total)
	}
}

func TestListSongPreloadsSinger(t *testing.T) {
	db := newTestDB(t)
	seedSongs(t, db)

	rows, _, err := List[model.Song](db, songCfg, Params{Page: 1, PageSize: 10, Keyword: "晴天"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("命中 %d 条, 期望1", len(rows))
	}
	if rows[0].Singer == nil || rows[0].Singer.Name != "周杰伦" {
		t.Fatalf("歌手未预加载: %+v", rows[0].Singer)
	}
}

func TestListPaginationAndTotal(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 25; i++ {
		if err := db.Create(&model.Singer{Name: fmt.Sprintf("歌手%02d", i)}).Error; err != nil {
			t.Fatalf("写入失败: %v", err)
		}
	}

	cfg := Config{KeywordColumn: "name"}

	// 显式分页：total为分页前总数，行数不超过pageSize
	rows, total, err := List[model.Singer](db, cfg, Params{Page: 3, PageSize: 10, Paginate: true})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, 期望25", total)
	}
	if len(rows) != 5 {
		t.Errorf("第3页行数 = %d, 期望5", len(rows))
	}

	// 未显式分页：返回全部
	rows, total, err = List[model.Singer](db, cfg, Params{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(rows) != 25 || total != 25 {
		t.Errorf("未分页查询返回 %d/%d, 期望25/25", len(rows), total)
	}
}

func TestListScopeFiltersOfficialSongLists(t *testing.T) {
	db := newTestDB(t)
	userID := uint(7)
	lists := []model.SongList{
		{Title: "官方精选"},
		{Title: "用户歌单", UserID: &userID},
	}
	if err := db.Create(&lists).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	cfg := Config{
		KeywordColumn: "title",
		Scope: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("user_id IS NULL")
		},
	}

	rows, total, err := List[model.SongList](db, cfg, Params{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Title != "官方精选" {
		t.Fatalf("官方歌单过滤失败: %+v", rows)
	}
}

func TestListKeywordIgnoredWithoutColumn(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&model.Rank{ConsumerID: 1, SongListID: 1, Score: 8}).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	// 无关键字列的实体忽略keyword参数
	rows, total, err := List[model.Rank](db, Config{}, Params{Page: 1, PageSize: 10, Keyword: "任意"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("返回 %d/%d, 期望1/1", len(rows), total)
	}
}

func TestGetByID(t *testing.T) {
	db := newTestDB(t)
	singer := model.Singer{Name: "测试歌手"}
	if err := db.Create(&singer).Error; err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	row, err := Get[model.Singer](db, Config{}, singer.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if row.Name != "测试歌手" {
		t.Errorf("Name = %s", row.Name)
	}

	if _, err := Get[model.Singer](db, Config{}, 9999); err != gorm.ErrRecordNotFound {
		t.Errorf("未命中应返回ErrRecordNotFound, 实际: %v", err)
	}
}

func TestParseParams(t *testing.T) {
	// 显式page才开启分页
	p := ParseParams("2", "5", "关键字", "3")
	if !p.Paginate || p.Page != 2 || p.PageSize != 5 {
		t.Errorf("分页参数解析错误: %+v", p)
	}
	if p.Keyword != "关键字" || p.SingerID == nil || *p.SingerID != 3 {
		t.Errorf("过滤参数解析错误: %+v", p)
	}

	// 无page参数时不分页
	p = ParseParams("", "", "", "")
	if p.Paginate || p.Page != DefaultPage || p.PageSize != DefaultPageSize {
		t.Errorf("默认参数错误: %+v", p)
	}

	// 非法数字回退默认值
	p = ParseParams("abc", "-1", "", "xyz")
	if !p.Paginate || p.Page != DefaultPage || p.PageSize != DefaultPageSize || p.SingerID != nil {
		t.Errorf("非法参数回退错误: %+v", p)
	}
}
