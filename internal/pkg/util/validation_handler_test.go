package util

import (
	"Dramaboard/internal/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegDTO(t *testing.T) {
	valid := dto.RegisterDTO{
		Username:        "haeun",
		Email:           "haeun@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}

	tests := []struct {
		name   string
		mutate func(*dto.RegisterDTO)
		want   bool
	}{
		{"合法注册", func(d *dto.RegisterDTO) {}, true},
		{"用户名过短", func(d *dto.RegisterDTO) { d.Username = "ab" }, false},
		{"用户名过长", func(d *dto.RegisterDTO) { d.Username = "abcdefghijklmnopqrstu" }, false},
		{"密码过短", func(d *dto.RegisterDTO) { d.Password = "12345"; d.ConfirmPassword = "12345" }, false},
		{"两次密码不一致", func(d *dto.RegisterDTO) { d.ConfirmPassword = "other" }, false},
		{"邮箱格式错误", func(d *dto.RegisterDTO) { d.Email = "not-an-email" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			assert.Equal(t, tt.want, ValidateRegDTO(&d))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("a@b.co"))
	assert.False(t, ValidateEmail("a@b"))
	assert.False(t, ValidateEmail(""))
}
