package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStudioApp_Initializers(t *testing.T) {
	app := NewStudioApp()
	require.NotNil(t, app, "NewStudioApp should not return nil")
}
