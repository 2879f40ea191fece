package weather

// Repository is the read-only contract the schedule store satisfies.
type Repository interface {
	All(scale ScalePreset) []ScheduledWeather
	FindByScreen(scale ScalePreset, screen Screen) (ScheduledWeather, error)
	FilterNextDays(scale ScalePreset) []ScheduledWeather
}
