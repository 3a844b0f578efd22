package model

import "testing"

func TestCollectTargetFrom(t *testing.T) {
	songID := uint(5)
	songListID := uint(3)

	target, ok := CollectTargetFrom(&songID, nil)
	if !ok || target.Kind != TargetSong || target.ID != 5 {
		t.Errorf("歌曲目标解析错误: %+v, %v", target, ok)
	}
	if target.SongID() == nil || *target.SongID() != 5 || target.SongListID() != nil {
		t.Errorf("歌曲目标列映射错误: %+v", target)
	}

	target, ok = CollectTargetFrom(nil, &songListID)
	if !ok || target.Kind != TargetSongList || target.ID != 3 {
		t.Errorf("歌单目标解析错误: %+v, %v", target, ok)
	}
	if target.SongListID() == nil || *target.SongListID() != 3 || target.SongID() != nil {
		t.Errorf("歌单目标列映射错误: %+v", target)
	}

	// 两个都空或都非空均非法
	if _, ok := CollectTargetFrom(nil, nil); ok {
		t.Error("无目标应解析失败")
	}
	if _, ok := CollectTargetFrom(&songID, &songListID); ok {
		t.Error("双目标应解析失败")
	}
}
