package users

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered developer. AccessToken is the GitHub token
// stored for delegated API calls and is never serialized to JSON.
type User struct {
	ID           int64        `json:"id"`
	GitHubID     string       `json:"githubId"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AvatarURL    string       `json:"avatarUrl"`
	Bio          string       `json:"bio"`
	Location     string       `json:"location"`
	PortfolioURL string       `json:"portfolioUrl"`
	Roles        string       `json:"roles"`
	Experience   string       `json:"experience"`
	Availability string       `json:"availability"`
	Languages    LanguageList `json:"languages"`
	AccessToken  string       `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// ordered list of language names, persisted as JSON text
type LanguageList []string

func (l LanguageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// parses the stored text defensively: malformed data (including rows
// written before the column carried JSON) scans as an empty list
func (l *LanguageList) Scan(value interface{}) error {
	*l = LanguageList{}

	if value == nil {
		return nil
	}

	var bytes []byte

	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(bytes, &parsed); err != nil {
		return nil
	}

	if parsed != nil {
		*l = parsed
	}

	return nil
}

// contains the mutable profile fields. All of them are overwritten on
// every update; omitted fields are written as empty.
type UpdateProfileRequest struct {
	Bio          string   `json:"bio" binding:"max=2000"`
	Location     string   `json:"location" binding:"max=200"`
	PortfolioURL string   `json:"portfolioUrl" binding:"max=500"`
	Roles        string   `json:"roles" binding:"max=500"`
	Experience   string   `json:"experience" binding:"max=200"`
	Availability string   `json:"availability" binding:"max=200"`
	Languages    []string `json:"languages" binding:"max=50,dive,max=50"`
}
