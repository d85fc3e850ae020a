package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"badwords.dev/pkg/badwords/internal/domain"
)

func TestViewCmd_ShowsConfig(t *testing.T) {
	useTestLogFile(t)
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().ShowConfig(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.StartDir != ""
	})).Return(nil)

	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_PropagatesError(t *testing.T) {
	useTestLogFile(t)
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().ShowConfig(mock.Anything, mock.Anything).Return(domain.ErrConfigInvalid)

	cmd.SetArgs([]string{"config"})
	assert.ErrorIs(t, cmd.Execute(), domain.ErrConfigInvalid)
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"config", "extra"})
	require.Error(t, cmd.Execute())
}

func TestListCmd_Plans(t *testing.T) {
	useTestLogFile(t)
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Plan(mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}
