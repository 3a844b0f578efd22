package service

import (
	"testing"

	"music-server/internal/repository"
)

func uintPtr(v uint) *uint { return &v }

func TestCollectAddCheckRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectService(repository.NewCollectRepository(db))

	// 添加前未收藏
	collected, err := svc.Check(1, uintPtr(5), nil)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if collected {
		t.Fatal("未添加即显示已收藏")
	}

	if err := svc.Add(1, uintPtr(5), nil); err != nil {
		t.Fatalf("添加失败: %v", err)
	}

	collected, err = svc.Check(1, uintPtr(5), nil)
	if err != nil || !collected {
		t.Fatalf("添加后Check = %v, %v", collected, err)
	}

	if err := svc.Remove(1, uintPtr(5), nil); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	collected, err = svc.Check(1, uintPtr(5), nil)
	if err != nil || collected {
		t.Fatalf("删除后Check = %v, %v", collected, err)
	}
}

func TestCollectDuplicateAdd(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectService(repository.NewCollectRepository(db))

	if err := svc.Add(1, nil, uintPtr(3)); err != nil {
		t.Fatalf("添加失败: %v", err)
	}
	err := svc.Add(1, nil, uintPtr(3))
	assertKind(t, err, KindConflict)
}

func TestCollectRemoveMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectService(repository.NewCollectRepository(db))

	err := svc.Remove(1, uintPtr(42), nil)
	assertKind(t, err, KindNotFound)
}

func TestCollectTargetValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectService(repository.NewCollectRepository(db))

	// consumerId缺失
	err := svc.Add(0, uintPtr(1), nil)
	assertKind(t, err, KindValidation)

	// 目标缺失
	err = svc.Add(1, nil, nil)
	assertKind(t, err, KindValidation)

	// 两个目标同时给出
	err = svc.Add(1, uintPtr(1), uintPtr(2))
	assertKind(t, err, KindValidation)

	_, err = svc.Check(1, nil, nil)
	assertKind(t, err, KindValidation)
}

func TestCollectSongAndSongListIndependent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollectService(repository.NewCollectRepository(db))

	// 同一用户收藏同ID的歌曲与歌单互不冲突
	if err := svc.Add(1, uintPtr(7), nil); err != nil {
		t.Fatalf("收藏歌曲失败: %v", err)
	}
	if err := svc.Add(1, nil, uintPtr(7)); err != nil {
		t.Fatalf("收藏歌单失败: %v", err)
	}

	// 删除歌曲收藏不影响歌单收藏
	if err := svc.Remove(1, uintPtr(7), nil); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	collected, err := svc.Check(1, nil, uintPtr(7))
	if err != nil || !collected {
		t.Fatalf("歌单收藏丢失: %v, %v", collected, err)
	}
}
