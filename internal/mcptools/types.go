package mcptools

// CurrentTimeInput is the input schema for the get_current_time MCP tool.
type CurrentTimeInput struct {
	Timezone string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name (e.g. 'America/New_York'). Defaults to 'Asia/Shanghai'."`
}

// CurrentTimeOutput is the output schema for the get_current_time MCP tool.
type CurrentTimeOutput struct {
	Timestamp   int64  `json:"timestamp"`
	Timezone    string `json:"timezone"`
	CurrentTime string `json:"current_time"`
}

// TimestampToTimeInput is the input schema for the convert_timestamp_to_time MCP tool.
type TimestampToTimeInput struct {
	Timestamp any    `json:"timestamp" jsonschema-description:"Unix timestamp, as an integer or a string of decimal digits"`
	Timezone  string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name. Defaults to 'Asia/Shanghai'."`
}

// TimestampToTimeOutput is the output schema for the convert_timestamp_to_time MCP tool.
type TimestampToTimeOutput struct {
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
}

// TimeToTimestampInput is the input schema for the convert_time_to_timestamp MCP tool.
type TimeToTimestampInput struct {
	Time     string `json:"time" jsonschema-description:"Time string in the format YYYY-MM-DD HH:MM:SS"`
	Timezone string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name the time string is in. Defaults to 'Asia/Shanghai'."`
}

// TimeToTimestampOutput is the output schema for the convert_time_to_timestamp MCP tool.
type TimeToTimestampOutput struct {
	Timezone  string `json:"timezone"`
	Timestamp int64  `json:"timestamp"`
}

// TimeDifferenceInput is the input schema for the time_difference MCP tool.
type TimeDifferenceInput struct {
	StartTimestamp any `json:"start_timestamp" jsonschema-description:"Starting Unix timestamp, as an integer or a string of decimal digits"`
	EndTimestamp   any `json:"end_timestamp" jsonschema-description:"Ending Unix timestamp, as an integer or a string of decimal digits"`
}

// TimeDifferenceOutput is the output schema for the time_difference MCP tool.
type TimeDifferenceOutput struct {
	TimeDifference int64 `json:"time_difference"`
}

// DecomposeInput is the input schema for the time_difference_caculate MCP tool.
type DecomposeInput struct {
	TimeDifference any    `json:"time_difference" jsonschema-description:"Time difference in seconds, as an integer or a string of decimal digits"`
	Mode           string `json:"mode,omitempty" jsonschema-description:"'p' for progressive calculation, 's' for separate calculation. Defaults to 'p'."`
}

// DecomposeOutput is the output schema for the time_difference_caculate MCP tool.
type DecomposeOutput struct {
	TimeDifference int64   `json:"time_difference"`
	Years          float64 `json:"years"`
	Months         float64 `json:"months"`
	Days           float64 `json:"days"`
	Hours          float64 `json:"hours"`
	Minutes        float64 `json:"minutes"`
	Seconds        float64 `json:"seconds"`
}

// DayOfWeekInput is the input schema for the get_day_of_week MCP tool.
type DayOfWeekInput struct {
	Timestamp any    `json:"timestamp" jsonschema-description:"Unix timestamp, as an integer or a string of decimal digits"`
	Timezone  string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name the weekday is read in. Defaults to 'Asia/Shanghai'."`
}

// DayOfWeekOutput is the output schema for the get_day_of_week MCP tool.
type DayOfWeekOutput struct {
	Timestamp int64  `json:"timestamp"`
	Timezone  string `json:"timezone"`
	DayOfWeek string `json:"day_of_week"`
}

// WeekTimestampsInput is the input schema for the get_weekday_timestamps_for_week MCP tool.
type WeekTimestampsInput struct {
	Timestamp any    `json:"timestamp" jsonschema-description:"Reference Unix timestamp, as an integer or a string of decimal digits"`
	Timezone  string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name. Defaults to 'Asia/Shanghai'."`
}

// WeekDayEntry is one day in the get_weekday_timestamps_for_week output.
type WeekDayEntry struct {
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"`
}

// WeekTimestampsOutput is the output schema for the get_weekday_timestamps_for_week MCP tool.
type WeekTimestampsOutput struct {
	ReferenceTimestamp int64                   `json:"reference_timestamp"`
	Timezone           string                  `json:"timezone"`
	WeekTimestamps     map[string]WeekDayEntry `json:"week_timestamps"`
}

// NextDateInput is the input schema for the time_until_next_date MCP tool.
type NextDateInput struct {
	Target   any    `json:"target" jsonschema-description:"A weekday name (e.g. 'Friday') or a day of the month (1-31)"`
	Timezone string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name. Defaults to 'Asia/Shanghai'."`
}

// NextDateOutput is the output schema for the time_until_next_date MCP tool.
type NextDateOutput struct {
	TargetDay            string `json:"target_day"`
	Timezone             string `json:"timezone"`
	NextOccurrenceTime   string `json:"next_occurrence_time"`
	TimeRemainingSeconds int64  `json:"time_remaining_seconds"`
}

// TargetsInput is the input schema for the calculate_time_until_targets MCP tool.
type TargetsInput struct {
	Targets  string `json:"targets" jsonschema-description:"JSON object mapping names to targets: a Unix timestamp or a 'next <weekday>' expression"`
	Timezone string `json:"timezone,omitempty" jsonschema-description:"IANA timezone name. Defaults to 'Asia/Shanghai'."`
}

// TargetEntry is the per-name result in the calculate_time_until_targets
// output. A resolved entry carries the time fields; a failed entry carries
// only Error.
type TargetEntry struct {
	Target               string `json:"target,omitempty"`
	TargetTime           string `json:"target_time,omitempty"`
	NextOccurrenceTime   string `json:"next_occurrence_time,omitempty"`
	TimeRemainingSeconds *int64 `json:"time_remaining_seconds,omitempty"`
	Error                string `json:"error,omitempty"`
}

// TargetsOutput is the output schema for the calculate_time_until_targets MCP tool.
type TargetsOutput struct {
	Timezone string                 `json:"timezone"`
	Results  map[string]TargetEntry `json:"results"`
}
