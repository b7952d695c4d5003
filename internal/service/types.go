package service

// Task is the canonical task record. After normalization every field is
// populated: Description is "" when the backend omitted it.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Profile is the current user's account record.
// ID is zero when the backend omits it.
type Profile struct {
	ID    int64
	Name  string
	Email string
}
