package servers

import (
	"context"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "Logistics dispatch API", swagger.Info.Title)
}

// Every operation in the document must be routed, and nothing else.
func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	documented := make(map[string]bool)
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			echoPath := path
			for _, name := range []string{"taskId", "driverId", "articleId"} {
				echoPath = strings.ReplaceAll(echoPath, "{"+name+"}", ":"+name)
			}
			documented[method+" "+echoPath] = true
		}
	}

	e := echo.New()
	RegisterHandlers(e, nil)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.Equal(t, documented, registered)
}
