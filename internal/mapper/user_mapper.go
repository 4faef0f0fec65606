package mapper

import (
	"live-rooms-be/internal/entity"
	"live-rooms-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	user := &entity.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsVerified:   u.IsVerified,
		ProfilePic:   u.ProfilePic,
		Bio:          u.Bio,
		CreatedAt:    u.CreatedAt,
	}
	if u.Otp != nil && u.OtpExpiresAt != nil {
		code := &entity.OneTimeCode{Code: *u.Otp, ExpiresAt: *u.OtpExpiresAt}
		if u.OtpPurpose != nil {
			code.Purpose = entity.OTPPurpose(*u.OtpPurpose)
		}
		user.OTP = code
	}
	return user
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	user := &model.User{
		Id:           u.Id,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsVerified:   u.IsVerified,
		ProfilePic:   u.ProfilePic,
		Bio:          u.Bio,
		CreatedAt:    u.CreatedAt,
	}
	if u.OTP != nil {
		code := u.OTP.Code
		purpose := string(u.OTP.Purpose)
		expiresAt := u.OTP.ExpiresAt
		user.Otp = &code
		user.OtpPurpose = &purpose
		user.OtpExpiresAt = &expiresAt
	}
	return user
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
