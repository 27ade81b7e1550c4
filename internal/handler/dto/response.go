package dto

import (
	"time"

	"github.com/nikfrants/biketransfer/internal/domain"
)

type ApplicationResponse struct {
	ID               string `json:"id"`
	UserID           int64  `json:"user_id"`
	EventID          string `json:"event_id"`
	EventName        string `json:"event_name"`
	PointKind        string `json:"point_kind"`
	PointName        string `json:"point_name"`
	SelectedDate     string `json:"selected_date"`
	SelectedTime     string `json:"selected_time"`
	PreRepair        bool   `json:"pre_repair"`
	PreRepairComment string `json:"pre_repair_comment,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type ProfileResponse struct {
	UserID              int64  `json:"user_id"`
	Username            string `json:"username,omitempty"`
	FullName            string `json:"full_name"`
	PhoneNumber         string `json:"phone_number"`
	PassportNumber      string `json:"passport_series_number"`
	PassportIssuedBy    string `json:"passport_issued_by"`
	PassportIssueDate   string `json:"passport_date_of_issue"`
	RegistrationAddress string `json:"registration_address"`
	RegisteredAt        string `json:"registered_at"`
	UpdatedAt           string `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		EventID:          a.EventID,
		EventName:        a.EventName,
		PointKind:        string(a.PointKind),
		PointName:        a.PointName,
		SelectedDate:     a.SelectedDate,
		SelectedTime:     a.SelectedTime,
		PreRepair:        a.PreRepair,
		PreRepairComment: a.PreRepairComment,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
	}
}

func ToProfileResponse(p *domain.ClientProfile) ProfileResponse {
	return ProfileResponse{
		UserID:              p.UserID,
		Username:            p.Username,
		FullName:            p.FullName,
		PhoneNumber:         p.PhoneNumber,
		PassportNumber:      p.PassportNumber,
		PassportIssuedBy:    p.PassportIssuedBy,
		PassportIssueDate:   p.PassportIssueDate,
		RegistrationAddress: p.RegistrationAddress,
		RegisteredAt:        p.RegisteredAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}
