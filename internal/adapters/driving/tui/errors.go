package tui

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingAccessGuard is returned when the access guard is not provided.
var ErrMissingAccessGuard = errors.New("tui: access guard is required")

// ErrMissingAuthService is returned when the auth service is not provided.
var ErrMissingAuthService = errors.New("tui: auth service is required")

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("tui: directory service is required")

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("tui: record service is required")

// ErrMissingChatService is returned when the chat service is not provided.
var ErrMissingChatService = errors.New("tui: chat service is required")

// ErrMissingCommunityService is returned when the community service is not provided.
var ErrMissingCommunityService = errors.New("tui: community service is required")

// ErrMissingPasswordProvider is returned when the password strategy constructor is not provided.
var ErrMissingPasswordProvider = errors.New("tui: password provider constructor is required")
