package model

// TargetKind 收藏/评论的目标类型
type TargetKind int

const (
	TargetSong     TargetKind = iota + 1 // 目标为歌曲
	TargetSongList                       // 目标为歌单
)

// CollectTarget 收藏目标：类型+ID的标签联合
// 使"歌曲与歌单二选一"的约束在类型上成立，而非依赖两个可空列的约定
type CollectTarget struct {
	Kind TargetKind
	ID   uint
}

// CollectTargetFrom 从两个可空ID解析收藏目标
// 两者都空或都非空时返回ok=false
func CollectTargetFrom(songID, songListID *uint) (CollectTarget, bool) {
	switch {
	case songID != nil && songListID == nil:
		return CollectTarget{Kind: TargetSong, ID: *songID}, true
	case songID == nil && songListID != nil:
		return CollectTarget{Kind: TargetSongList, ID: *songListID}, true
	default:
		return CollectTarget{}, false
	}
}

// SongID 目标为歌曲时返回歌曲ID指针，否则返回nil
func (t CollectTarget) SongID() *uint {
	if t.Kind == TargetSong {
		id := t.ID
		return &id
	}
	return nil
}

// SongListID 目标为歌单时返回歌单ID指针，否则返回nil
func (t CollectTarget) SongListID() *uint {
	if t.Kind == TargetSongList {
		id := t.ID
		return &id
	}
	return nil
}
