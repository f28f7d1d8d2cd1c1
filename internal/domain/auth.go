package domain

// Identity is the decoded token payload attached to authenticated
// requests. Claims are trusted as embedded at issue time; only the
// explicit verify operation re-reads the live record.
type Identity struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
