package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/pkg/types"
)

var ErrNoUserInContext = errors.New("authenticated user not found in context")

// GetCurrentUser returns the user record resolved by the JWT middleware.
var GetCurrentUser = func(c *gin.Context) (user.User, error) {
	val, exists := c.Get(types.ContextUserKey)
	if !exists {
		return user.User{}, ErrNoUserInContext
	}

	u, ok := val.(user.User)
	if !ok {
		return user.User{}, errors.New("invalid user type in context")
	}

	return u, nil
}

func GetActor(c *gin.Context) (user.Actor, error) {
	u, err := GetCurrentUser(c)
	if err != nil {
		return user.Actor{}, err
	}
	return u.Actor(), nil
}

func GetClaims(c *gin.Context) (*types.Claims, error) {
	val, exists := c.Get(types.ContextClaimsKey)
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := val.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}
