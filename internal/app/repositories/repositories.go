package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	TokenRepository   *TokenRepository
	DormRepository    *DormRepository
	OutingRepository  *OutingRepository
	PostRepository    *PostRepository
	InquiryRepository *InquiryRepository
	NoticeRepository  *NoticeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		TokenRepository:   NewTokenRepository(db),
		DormRepository:    NewDormRepository(db),
		OutingRepository:  NewOutingRepository(db),
		PostRepository:    NewPostRepository(db),
		InquiryRepository: NewInquiryRepository(db),
		NoticeRepository:  NewNoticeRepository(db),
	}
}
