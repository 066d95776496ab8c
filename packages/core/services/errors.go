package services

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidProfileID = errors.New("invalid profile id")
	ErrUsernameTaken    = errors.New("username already taken")

	ErrGroupNotFound  = errors.New("group not found")
	ErrAlreadyMember  = errors.New("profile is already a member of this group")
	ErrMemberNotFound = errors.New("group member not found")

	ErrCourseNotFound = errors.New("course not found")

	ErrMatchNotFound   = errors.New("match not found")
	ErrInvalidStatus   = errors.New("match status does not allow this operation")
	ErrNotGroupMember  = errors.New("player is not a member of the match group")
	ErrDuplicatePlayer = errors.New("player assigned to more than one team")
	ErrMissingScore    = errors.New("every team needs a gross score")
	ErrDuplicateScore  = errors.New("team scored more than once")
	ErrUnknownTeam     = errors.New("unknown team number")
)
