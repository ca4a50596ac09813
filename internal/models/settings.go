package models

// UserSettings holds the single settings record.
type UserSettings struct {
	VocalRange          string `json:"vocalRange" validate:"omitempty,oneof=Soprano Mezzo-Soprano Mezzo-Soprano/Belt Alto Alto/Mezzo Tenor Baritone Baritone/Tenor Bass Bass/Baritone"`
	PracticeGoalPerWeek int    `json:"practiceGoalPerWeek" validate:"min=1,max=50"`
	ReminderEnabled     bool   `json:"reminderEnabled"`
	ReminderTime        string `json:"reminderTime" validate:"datetime=15:04"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() UserSettings {
	return UserSettings{
		VocalRange:          "",
		PracticeGoalPerWeek: 5,
		ReminderEnabled:     false,
		ReminderTime:        "18:00",
	}
}

func (s UserSettings) Validate() error { return ValidateStruct(s) }

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	VocalRange          *string
	PracticeGoalPerWeek *int
	ReminderEnabled     *bool
	ReminderTime        *string
}

// Apply merges p into s and returns the result.
func (p SettingsPatch) Apply(s UserSettings) UserSettings {
	if p.VocalRange != nil {
		s.VocalRange = *p.VocalRange
	}
	if p.PracticeGoalPerWeek != nil {
		s.PracticeGoalPerWeek = *p.PracticeGoalPerWeek
	}
	if p.ReminderEnabled != nil {
		s.ReminderEnabled = *p.ReminderEnabled
	}
	if p.ReminderTime != nil {
		s.ReminderTime = *p.ReminderTime
	}
	return s
}

// Empty reports whether the patch changes nothing.
func (p SettingsPatch) Empty() bool {
	return p.VocalRange == nil && p.PracticeGoalPerWeek == nil && p.ReminderEnabled == nil && p.ReminderTime == nil
}
