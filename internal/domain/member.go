package domain

import "time"

type Member struct {
	ID        int64     `json:"id" db:"member_id"`
	Email     string    `json:"email" db:"email"`
	Nickname  string    `json:"nickname" db:"nickname"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type MemberInfo struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}
