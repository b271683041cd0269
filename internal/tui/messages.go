package tui

import "github.com/MKhiriev/go-user-directory/models"

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type copiedMsg struct {
	email string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
