package user

import (
	"classtrack/core"
)

const storageKey = "user"

// Service manages the single active local profile. There is no credential
// verification anywhere: "logging in" constructs a profile from the form
// input and persists it, and whichever profile was last persisted becomes
// current again on the next start with no re-validation.
type Service struct {
	kv  core.KVStore
	log core.Logger
	usr *User
}

func NewService(kv core.KVStore, log core.Logger) *Service {
	svc := &Service{kv: kv, log: log}
	if usr := core.LoadJSON[*User](kv, log, storageKey, nil); usr != nil {
		svc.usr = usr
	}
	return svc
}

// Login validates `in`, derives the profile ID and makes the resulting User
// current, persisting it. No state changes on a validation error.
func (svc *Service) Login(in Login) (User, error) {
	if err := in.Validate(); err != nil {
		return User{}, err
	}
	usr := User{
		ID:       DeriveID(in.Name, in.Password),
		Name:     in.Name,
		Program:  in.Program,
		Subject:  in.Subject,
		Password: in.Password,
	}
	svc.usr = &usr
	core.SaveJSON(svc.kv, svc.log, storageKey, &usr)
	return usr, nil
}

// Logout clears the current profile and persists the cleared state. Stale
// profiles stay in the store but are unreachable without re-entering the
// same name and password.
func (svc *Service) Logout() {
	svc.usr = nil
	core.SaveJSON(svc.kv, svc.log, storageKey, nil)
}

func (svc *Service) Current() (User, bool) {
	if svc.usr == nil {
		return User{}, false
	}
	return *svc.usr, true
}
