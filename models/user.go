package models

import (
	"time"
)

// SubscriptionPlan represents a subscription tier
type SubscriptionPlan string

const (
	PlanFree  SubscriptionPlan = "free"
	PlanBasic SubscriptionPlan = "basic"
	PlanPro   SubscriptionPlan = "pro"
	PlanVIP   SubscriptionPlan = "vip"
)

// IsValid checks if the plan is a known tier
func (p SubscriptionPlan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro, PlanVIP:
		return true
	}
	return false
}

// SubscriptionStatus represents the state of a user's subscription
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionInactive  SubscriptionStatus = "inactive"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// IsValid checks if the status is a known subscription state
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionActive, SubscriptionInactive, SubscriptionCancelled:
		return true
	}
	return false
}

// User represents a member synced from the identity provider
type User struct {
	ID                 string             `db:"id" json:"id"`
	Email              *string            `db:"email" json:"email"`
	FirstName          *string            `db:"first_name" json:"firstName"`
	LastName           *string            `db:"last_name" json:"lastName"`
	ProfileImageURL    *string            `db:"profile_image_url" json:"profileImageUrl"`
	SubscriptionPlan   SubscriptionPlan   `db:"subscription_plan" json:"subscriptionPlan"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status" json:"subscriptionStatus"`
	SubscriptionExpiry *time.Time         `db:"subscription_expiry" json:"subscriptionExpiry"`
	IsAdmin            bool               `db:"is_admin" json:"isAdmin"`
	CreatedAt          time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `db:"updated_at" json:"updatedAt"`
}

// UpsertUser carries the identity-provider claims used to sync a user row
type UpsertUser struct {
	ID              string  `json:"id"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}
