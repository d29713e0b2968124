package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	Contacts         *ContactRepository
	CategoryDefaults *CategoryDefaultRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		Contacts:         NewContactRepository(database),
		CategoryDefaults: NewCategoryDefaultRepository(database),
	}
}
