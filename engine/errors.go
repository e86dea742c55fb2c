package engine

import "errors"

var (
	// ErrNoRenderer means a required rendering collaborator is missing
	ErrNoRenderer = errors.New("rendering collaborator not available")
	// ErrNoMountPoint means the container the kit renders into is missing
	ErrNoMountPoint = errors.New("drum kit container not found")
	// ErrNoKit means the router was wired before the kit was built
	ErrNoKit = errors.New("drum kit not built")
	// ErrNoScheduler means no deferred task scheduler was supplied
	ErrNoScheduler = errors.New("scheduler not available")
)
