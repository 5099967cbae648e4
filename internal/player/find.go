// Package player spawns and drives the single first-person player rig.
package player

import (
	"errors"
	"fmt"

	"walk3d/internal/components"
	"walk3d/internal/engine"
)

var (
	ErrPlayerNotFound        = errors.New("player body not found")
	ErrMultiplePlayers       = errors.New("more than one player body")
	ErrCameraNotFound        = errors.New("player camera not found")
	ErrForwardHelperNotFound = errors.New("forward helper not found")
)

// FindBody returns the single object carrying a PlayerBody.
func FindBody(scene *engine.Scene) (*engine.GameObject, *components.PlayerBody, error) {
	matches := engine.Query[*components.PlayerBody](scene)
	switch len(matches) {
	case 0:
		return nil, nil, ErrPlayerNotFound
	case 1:
		return matches[0].Object, matches[0].Component, nil
	default:
		return nil, nil, fmt.Errorf("%w: found %d", ErrMultiplePlayers, len(matches))
	}
}

// FindCamera returns the first object carrying a CameraState.
func FindCamera(scene *engine.Scene) (*engine.GameObject, *components.CameraState, error) {
	matches := engine.Query[*components.CameraState](scene)
	if len(matches) == 0 {
		return nil, nil, ErrCameraNotFound
	}
	return matches[0].Object, matches[0].Component, nil
}

// FindForwardHelper resolves the helper referenced by the player body.
func FindForwardHelper(scene *engine.Scene, body *components.PlayerBody) (*engine.GameObject, error) {
	helper := body.ForwardHelper.Get(scene)
	if helper == nil || !engine.HasComponent[*components.ForwardHelper](helper) {
		return nil, ErrForwardHelperNotFound
	}
	return helper, nil
}
