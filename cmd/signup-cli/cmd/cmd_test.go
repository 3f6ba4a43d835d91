package cmd

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/nfrund/signup/internal/domain"
	"github.com/nfrund/signup/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFormJSON = `{
  "firstName": "Ada",
  "lastName": "Lovelace",
  "email": "ada@example.com",
  "phoneNumber": "+491701234567",
  "password": "Secret123",
  "confirmPassword": "Secret123"
}`

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := appFs
	appFs = afero.NewMemMapFs()
	t.Cleanup(func() { appFs = prev })
	return appFs
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCmd_ValidFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "form.json", []byte(validFormJSON), 0644))

	out, err := run(t, "validate", "--file", "form.json")
	require.NoError(t, err)
	assert.Contains(t, out, "Form is valid")
}

func TestValidateCmd_FlagsOverrideFileAndReportAll(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "form.json", []byte(validFormJSON), 0644))

	out, err := run(t, "validate", "--file", "form.json", "--email", "nope", "--phone", "123")
	require.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, out, "email: Please enter a valid email address")
	assert.Contains(t, out, "phoneNumber:")
}

func TestValidateCmd_MissingFile(t *testing.T) {
	useMemFs(t)

	_, err := run(t, "validate", "--file", "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read form file")
}

func TestRegisterCmd_Success(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "form.json", []byte(validFormJSON), 0644))

	api := testutils.NewRegisterAPI(t)

	out, err := run(t, "register", "--api-url", api.URL, "--file", "form.json", "--redirect-delay", "10ms")
	require.NoError(t, err)
	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "ada@example.com", reqs[0].Body["email"])
	assert.Contains(t, out, "Registration successful! Welcome, Ada.")
	assert.Contains(t, out, "→ /login")
}

func TestRegisterCmd_ValidateFirstSkipsAPI(t *testing.T) {
	useMemFs(t)

	api := testutils.NewRegisterAPI(t)

	out, err := run(t, "register", "--api-url", api.URL, "--validate-first", "--first-name", "A")
	require.ErrorIs(t, err, errInvalidForm)
	assert.Zero(t, api.Calls())
	assert.Contains(t, out, "firstNameError")
}

func TestRegisterCmd_ServerRejection(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "form.json", []byte(validFormJSON), 0644))

	api := testutils.NewRegisterAPI(t)
	api.Reply(http.StatusConflict, `{"errors":["Email already registered"]}`)

	out, err := run(t, "register", "--api-url", api.URL, "--file", "form.json")
	require.ErrorIs(t, err, domain.ErrRegistrationFailed)
	assert.Contains(t, out, "❌ Email already registered")
	assert.NotContains(t, out, "→")
}

func TestRegisterCmd_RequiresAPIURL(t *testing.T) {
	t.Setenv("REGISTER_API_URL", "")

	_, err := run(t, "register", "--api-url", "")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Signup CLI v")
}

func TestNewRootCmd_BuildsIndependentTrees(t *testing.T) {
	first, second := newRootCmd(), newRootCmd()

	v1, _, err := first.Find([]string{"version"})
	require.NoError(t, err)
	v2, _, err := second.Find([]string{"version"})
	require.NoError(t, err)

	assert.NotSame(t, v1, v2)
	assert.Same(t, first, v1.Parent())
	assert.Same(t, second, v2.Parent())
}
