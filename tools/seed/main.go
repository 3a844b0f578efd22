// 数据库初始化工具：清空目录相关表并写入一批演示数据。
// 表结构由服务端启动时的AutoMigrate维护，这里只负责数据。
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

// 清空顺序：子表在前
var tables = []string{
	"list_songs", "collects", "comments", "ranks",
	"songs", "song_lists", "swipers", "singers", "consumers", "admins",
}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	fmt.Print("\nWARNING: This operation will CLEAR ALL DATA in the catalog tables!\n")
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=0")

	for _, table := range tables {
		fmt.Printf("Clearing table %s... ", table)
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Println("Success")
		}
	}

	fmt.Println("\nResetting auto-increment IDs...")
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)); err != nil {
			fmt.Printf("Resetting %s failed: %v\n", table, err)
		}
	}

	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=1")

	fmt.Println("\nSeeding demo data...")
	seed(db)

	fmt.Println("\nDatabase seed completed!")
}

func seed(db *sql.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Password hash failed: %v", err)
	}

	exec := func(query string, args ...interface{}) {
		if _, err := db.Exec(query, args...); err != nil {
			fmt.Printf("Seed failed: %v\n  query: %s\n", err, query)
		}
	}

	// 账号（密码均为123456）
	exec("INSERT INTO admins (username, password, created_at) VALUES (?, ?, NOW())", "admin", string(hash))
	exec("INSERT INTO consumers (username, password, email, avatar, created_at, updated_at) VALUES (?, ?, ?, '', NOW(), NOW())",
		"demo", string(hash), "demo@example.com")

	// 歌手与歌曲
	singers := []struct {
		name, gender, desc string
	}{
		{"周杰伦", "男", "华语流行男歌手"},
		{"邓紫棋", "女", "华语流行女歌手"},
		{"五月天", "组合", "摇滚乐团"},
	}
	for _, s := range singers {
		exec("INSERT INTO singers (name, gender, pic, description, created_at) VALUES (?, ?, '', ?, NOW())",
			s.name, s.gender, s.desc)
	}

	songs := []struct {
		name string
		sid  int
	}{
		{"晴天", 1}, {"七里香", 1}, {"光年之外", 2}, {"倔强", 3}, {"突然好想你", 3},
	}
	for _, s := range songs {
		exec("INSERT INTO songs (name, singer_id, url, pic, lyric, created_at) VALUES (?, ?, ?, '', '', NOW())",
			s.name, s.sid, fmt.Sprintf("/media/%s.mp3", s.name))
	}

	// 官方歌单（user_id为空）与成员
	exec("INSERT INTO song_lists (title, style, pic, introduction, user_id, created_at) VALUES (?, ?, '', ?, NULL, NOW())",
		"华语经典", "流行", "编辑精选的华语经典曲目")
	exec("INSERT INTO song_lists (title, style, pic, introduction, user_id, created_at) VALUES (?, ?, '', ?, NULL, NOW())",
		"摇滚现场", "摇滚", "燥起来")
	for i := 1; i <= 3; i++ {
		exec("INSERT INTO list_songs (song_list_id, song_id, created_at) VALUES (1, ?, NOW())", i)
	}

	// 轮播图
	exec("INSERT INTO swipers (pic, url, title, created_at) VALUES (?, ?, ?, NOW())",
		"/media/banner1.jpg", "/songlist/1", "本周精选歌单")
	exec("INSERT INTO swipers (pic, url, title, created_at) VALUES (?, ?, ?, NOW())",
		"/media/banner2.jpg", "/singer/1", "歌手推荐")

	fmt.Println("Seeded: 1 admin, 1 consumer, 3 singers, 5 songs, 2 song lists, 2 swipers")
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		fmt.Println("Config file not found, using default config")
		cfg := &Config{}
		cfg.Database.Host = "localhost"
		cfg.Database.Port = 3306
		cfg.Database.Username = "root"
		cfg.Database.Password = "123456"
		cfg.Database.Database = "music_app"
		cfg.Database.Charset = "utf8mb4"
		return cfg
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Config file parsing failed: %v", err)
	}
	return &cfg
}
