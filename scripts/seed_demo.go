// 初始化演示数据脚本
//
// 建一个教师账号和一套 班级→主题→作业/测验 的示例数据，
// 用于首次部署后的冒烟验证。重复执行会因邮箱已注册而直接退出。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"
	"teacher_portal_backend/internal/config"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/pkg/database"
	"teacher_portal_backend/pkg/logger"
	"time"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	authService := service.NewAuthService(repository.NewUserRepository(db), &cfg)

	teacher := &model.User{
		Name:     "Demo Teacher",
		Email:    "demo.teacher@school.test",
		Password: "change-me-please",
		Role:     model.RoleTeacher,
	}
	if err := authService.Register(teacher); err != nil {
		log.Fatalf("演示教师创建失败（已存在？）: %v", err)
	}

	class := &model.Class{Name: "Demo Class", TeacherID: teacher.ID}
	if err := db.Create(class).Error; err != nil {
		log.Fatalf("示例班级创建失败: %v", err)
	}
	topic := &model.Topic{Name: "Demo Topic", ClassID: class.ID}
	if err := db.Create(topic).Error; err != nil {
		log.Fatalf("示例主题创建失败: %v", err)
	}
	assignment := &model.Assignment{
		Name:        "Demo Assignment",
		Description: "Seeded for smoke testing.",
		DueDate:     time.Now().AddDate(0, 0, 7),
		TopicID:     topic.ID,
	}
	if err := db.Create(assignment).Error; err != nil {
		log.Fatalf("示例作业创建失败: %v", err)
	}
	quiz := &model.Quiz{Name: "Demo Quiz", TopicID: topic.ID}
	if err := db.Create(quiz).Error; err != nil {
		log.Fatalf("示例测验创建失败: %v", err)
	}

	student := &model.Student{Name: "Demo Student"}
	if err := db.Create(student).Error; err != nil {
		log.Fatalf("示例学生创建失败: %v", err)
	}
	if err := db.Create(&model.Enrollment{StudentID: student.ID, ClassID: class.ID}).Error; err != nil {
		log.Fatalf("示例选课创建失败: %v", err)
	}

	log.Printf("完成！教师 %s / 班级 %d / 测验 %d", teacher.Email, class.ID, quiz.ID)
}
