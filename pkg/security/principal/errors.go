// SPDX-License-Identifier: Apache-2.0

package principal

import (
	"github.com/joomcode/errorx"
)

var (
	ErrorsNamespace    = errorx.NewNamespace("security")
	UserNotFoundError  = ErrorsNamespace.NewType("user_not_found")
	GroupNotFoundError = ErrorsNamespace.NewType("group_not_found")
	UserCreateError    = ErrorsNamespace.NewType("user_create_failed")
	GroupCreateError   = ErrorsNamespace.NewType("group_create_failed")
)

var (
	nameProperty = errorx.RegisterPrintableProperty("name")
	uidProperty  = errorx.RegisterPrintableProperty("uid")
	gidProperty  = errorx.RegisterPrintableProperty("gid")
)

func NewUserNotFoundError(cause error, name string, uid string) *errorx.Error {
	err := UserNotFoundError.New("User with name %q and uid %q not found!", name, uid).
		WithProperty(nameProperty, name).
		WithProperty(uidProperty, uid)

	if cause == nil {
		return err
	}

	return err.WithUnderlyingErrors(cause)
}

func NewGroupNotFoundError(cause error, name string, gid string) *errorx.Error {
	err := GroupNotFoundError.New("Group with name %q and gid %q not found!", name, gid).
		WithProperty(nameProperty, name).
		WithProperty(gidProperty, gid)

	if cause == nil {
		return err
	}

	return err.WithUnderlyingErrors(cause)
}

func NewUserCreateError(cause error, name string, detail string) *errorx.Error {
	err := UserCreateError.New("failed to create user %q: %s", name, detail).
		WithProperty(nameProperty, name)

	if cause == nil {
		return err
	}

	return err.WithUnderlyingErrors(cause)
}

func NewGroupCreateError(cause error, name string, detail string) *errorx.Error {
	err := GroupCreateError.New("failed to create group %q: %s", name, detail).
		WithProperty(nameProperty, name)

	if cause == nil {
		return err
	}

	return err.WithUnderlyingErrors(cause)
}

// SafeErrorDetails emits a PII-safe slice.
func SafeErrorDetails(err *errorx.Error) []string {
	var safeDetails []string
	if err == nil {
		return safeDetails
	}

	for _, prop := range []errorx.Property{nameProperty, uidProperty, gidProperty} {
		if val, ok := err.Property(prop); ok {
			safeDetails = append(safeDetails, val.(string))
		}
	}

	return safeDetails
}
