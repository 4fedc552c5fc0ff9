package dto

import (
	"github.com/BruksfildServices01/gym-saas/internal/domain/plan"
	"github.com/BruksfildServices01/gym-saas/internal/models"
	"github.com/BruksfildServices01/gym-saas/internal/usecase/quota"
)

type GymOverviewDTO struct {
	Gym    *models.Gym `json:"gym"`
	Plan   plan.Key    `json:"plan"`
	Limits plan.Limits `json:"limits"`
	Usage  quota.Usage `json:"usage"`
}
