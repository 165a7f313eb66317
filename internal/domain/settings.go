package domain

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type DefaultView string

const (
	ViewDashboard    DefaultView = "dashboard"
	ViewTransactions DefaultView = "transactions"
	ViewBudget       DefaultView = "budget"
	ViewAnalytics    DefaultView = "analytics"
)

// UserSettings is the persisted per-user display configuration. The validate tags
// declare the enumerations every stored or patched value must belong to.
type UserSettings struct {
	FirstName          string      `json:"first_name" validate:"max=50"`
	LastName           string      `json:"last_name" validate:"max=50"`
	Email              string      `json:"email" validate:"omitempty,email"`
	Currency           string      `json:"currency" validate:"oneof=USD EUR GBP CAD INR AUD BTC ETH SOL"`
	Timezone           string      `json:"timezone" validate:"oneof=America/New_York America/Chicago America/Denver America/Los_Angeles Europe/London Europe/Paris Asia/Tokyo Asia/Shanghai"`
	Theme              Theme       `json:"theme" validate:"oneof=light dark system"`
	DefaultView        DefaultView `json:"default_view" validate:"oneof=dashboard transactions budget analytics"`
	EmailNotifications bool        `json:"email_notifications"`
	PushNotifications  bool        `json:"push_notifications"`
	BudgetAlerts       bool        `json:"budget_alerts"`
	GoalReminders      bool        `json:"goal_reminders"`
	WeeklyReports      bool        `json:"weekly_reports"`
	DataSharing        bool        `json:"data_sharing"`
	AnalyticsTracking  bool        `json:"analytics_tracking"`
	MarketingEmails    bool        `json:"marketing_emails"`
	CompactView        bool        `json:"compact_view"`
	ShowBalances       bool        `json:"show_balances"`
}

func DefaultSettings() UserSettings {
	return UserSettings{
		Currency:           BaseCurrency,
		Timezone:           "America/New_York",
		Theme:              ThemeDark,
		DefaultView:        ViewDashboard,
		EmailNotifications: true,
		PushNotifications:  true,
		BudgetAlerts:       true,
		GoalReminders:      true,
		WeeklyReports:      true,
		DataSharing:        false,
		AnalyticsTracking:  true,
		MarketingEmails:    false,
		CompactView:        false,
		ShowBalances:       true,
	}
}

// SettingsPatch carries a partial update; nil fields are left untouched.
type SettingsPatch struct {
	FirstName          *string      `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName           *string      `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Email              *string      `json:"email,omitempty" validate:"omitempty,email"`
	Currency           *string      `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP CAD INR AUD BTC ETH SOL"`
	Timezone           *string      `json:"timezone,omitempty" validate:"omitempty,oneof=America/New_York America/Chicago America/Denver America/Los_Angeles Europe/London Europe/Paris Asia/Tokyo Asia/Shanghai"`
	Theme              *Theme       `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
	DefaultView        *DefaultView `json:"default_view,omitempty" validate:"omitempty,oneof=dashboard transactions budget analytics"`
	EmailNotifications *bool        `json:"email_notifications,omitempty"`
	PushNotifications  *bool        `json:"push_notifications,omitempty"`
	BudgetAlerts       *bool        `json:"budget_alerts,omitempty"`
	GoalReminders      *bool        `json:"goal_reminders,omitempty"`
	WeeklyReports      *bool        `json:"weekly_reports,omitempty"`
	DataSharing        *bool        `json:"data_sharing,omitempty"`
	AnalyticsTracking  *bool        `json:"analytics_tracking,omitempty"`
	MarketingEmails    *bool        `json:"marketing_emails,omitempty"`
	CompactView        *bool        `json:"compact_view,omitempty"`
	ShowBalances       *bool        `json:"show_balances,omitempty"`
}
