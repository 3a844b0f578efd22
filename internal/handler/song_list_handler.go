package handler

import (
	"strconv"

	"music-server/internal/service"
	"music-server/pkg/response"

	"github.com/gin-gonic/gin"
)

// SongListHandler 歌单创建与成员管理接口
type SongListHandler struct {
	service *service.SongListService
}

// NewSongListHandler 创建SongListHandler实例
func NewSongListHandler(s *service.SongListService) *SongListHandler {
	return &SongListHandler{service: s}
}

// Create 创建用户歌单
func (h *SongListHandler) Create(c *gin.Context) {
	type req struct {
		Title        string `json:"title"`
		Introduction string `json:"introduction"`
		UserID       uint   `json:"user_id"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	songList, err := h.service.Create(r.Title, r.Introduction, r.UserID)
	if err != nil {
		fail(c, "歌单创建", err)
		return
	}
	response.Success(c, songList)
}

// Created 获取用户创建的歌单
func (h *SongListHandler) Created(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		response.Error(c, "userId必须为数字")
		return
	}

	lists, err := h.service.ListCreated(uint(userID))
	if err != nil {
		fail(c, "用户歌单查询", err)
		return
	}
	response.Success(c, lists)
}

// memberReq 歌单成员请求体
type memberReq struct {
	SongListID uint `json:"songListId"`
	SongID     uint `json:"songId"`
}

// AddSong 向歌单添加歌曲
func (h *SongListHandler) AddSong(c *gin.Context) {
	var r memberReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	if err := h.service.AddSong(r.SongListID, r.SongID); err != nil {
		fail(c, "歌单添加歌曲", err)
		return
	}
	response.SuccessWithMsg(c, "添加成功", nil)
}

// RemoveSong 从歌单移除歌曲
func (h *SongListHandler) RemoveSong(c *gin.Context) {
	var r memberReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.Error(c, "请求参数错误")
		return
	}

	if err := h.service.RemoveSong(r.SongListID, r.SongID); err != nil {
		fail(c, "歌单移除歌曲", err)
		return
	}
	response.SuccessWithMsg(c, "移除成功", nil)
}

// Songs 获取歌单内的歌曲（按加入顺序，附带歌手信息）
func (h *SongListHandler) Songs(c *gin.Context) {
	playlistID, err := strconv.ParseUint(c.Param("playlistId"), 10, 32)
	if err != nil {
		response.Error(c, "歌单ID无效")
		return
	}

	songs, err := h.service.GetSongs(uint(playlistID))
	if err != nil {
		fail(c, "歌单歌曲查询", err)
		return
	}
	response.Success(c, songs)
}
