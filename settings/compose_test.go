package settings_test

import (
	"sync"
	"testing"

	"github.com/0xalexb/hjarta-settings/config"
	yamlparser "github.com/0xalexb/hjarta-settings/config/parser/yaml"
	"github.com/0xalexb/hjarta-settings/registry"
	"github.com/0xalexb/hjarta-settings/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
umbracoConfiguration:
  global:
    configurationStatus: 8.7.0
    timeOutInMinutes: 20
    defaultUILanguage: en
    umbracoPath: "~/umbraco"
    reservedPaths: "~/app_plugins/,~/install/,~/umbraco"
  hosting:
    localTempStorageLocation: EnvironmentTemp
  settings:
    content:
      notificationEmailAddress: robot@example.com
    security:
      keepUserLoggedIn: true
      userPasswordConfiguration:
        requiredLength: 12
    webRouting:
      urlProviderMode: Relative
`

type staticFetcher struct {
	data  []byte
	mu    sync.Mutex
	calls int
}

func (f *staticFetcher) Fetch() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++

	return f.data, nil
}

type failingFetcher struct{}

func (failingFetcher) Fetch() ([]byte, error) {
	return nil, config.ErrResourceNotFound
}

func rootSettings() *settings.UmbracoSection {
	root := &settings.UmbracoSection{}
	root.SetDefaults()

	return root
}

func TestCompose_ContentResolvedTwiceIsIdentical(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, rootSettings()))
	require.NoError(t, settings.Compose(reg))

	root, err := registry.Resolve[*settings.UmbracoSection](reg)
	require.NoError(t, err)

	first, err := registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)

	second, err := registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, root.Content, first)
	assert.Equal(t, settings.DefaultImageFileTypes(), first.ImageFileTypes)
	assert.Equal(t, settings.DefaultImageAutoFillProperties(), first.ImageAutoFillProperties)
}

func TestCompose_SecurityHasPasswordConfigurations(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, rootSettings()))
	require.NoError(t, settings.Compose(reg))

	security, err := registry.Resolve[*settings.SecuritySection](reg)
	require.NoError(t, err)

	require.NotNil(t, security.UserPasswordConfiguration)
	require.NotNil(t, security.MemberPasswordConfiguration)
	assert.Equal(t, settings.DefaultUserPasswordConfiguration(), security.UserPasswordConfiguration)
	assert.Equal(t, settings.DefaultMemberPasswordConfiguration(), security.MemberPasswordConfiguration)
}

func TestCompose_DoesNotBuildValues(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	var calls int

	require.NoError(t, registry.RegisterUnique(reg, func() (*settings.UmbracoSection, error) {
		calls++

		return rootSettings(), nil
	}))
	require.NoError(t, settings.Compose(reg))

	assert.Equal(t, 0, calls)
	assert.Equal(t, []string{
		"*settings.ContentSection",
		"*settings.SecuritySection",
		"*settings.UmbracoSection",
	}, reg.Registered())
}

func TestCompose_TwiceBeforeResolutionIsHarmless(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, rootSettings()))
	require.NoError(t, settings.Compose(reg))
	require.NoError(t, settings.Compose(reg))

	content, err := registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)
	assert.NotNil(t, content)
}

func TestCompose_AfterResolutionFails(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, rootSettings()))
	require.NoError(t, settings.Compose(reg))

	_, err := registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)

	err = settings.Compose(reg)
	require.ErrorIs(t, err, registry.ErrAlreadyResolved)
}

func TestCompose_MissingSubSection(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, &settings.UmbracoSection{}))
	require.NoError(t, settings.Compose(reg))

	_, err := registry.Resolve[*settings.SecuritySection](reg)
	require.ErrorIs(t, err, settings.ErrSectionMissing)
}

func TestCompose_WithoutRootFailsValidation(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, settings.Compose(reg))

	_, err := registry.Resolve[*settings.ContentSection](reg)
	require.ErrorIs(t, err, registry.ErrNotRegistered)
}

func TestComposeAll_RegistersRemainingSections(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, registry.Supply(reg, rootSettings()))
	require.NoError(t, settings.ComposeAll(reg))

	requestHandler, err := registry.Resolve[*settings.RequestHandlerSettings](reg)
	require.NoError(t, err)
	assert.True(t, requestHandler.AddTrailingSlash)
	assert.Equal(t, settings.DefaultCharReplacements(), requestHandler.CharCollection)

	webRouting, err := registry.Resolve[*settings.WebRoutingSettings](reg)
	require.NoError(t, err)
	assert.Equal(t, settings.URLModeAuto, webRouting.URLProviderMode)

	logging, err := registry.Resolve[*settings.LoggingSettings](reg)
	require.NoError(t, err)
	assert.Equal(t, -1, logging.MaxLogAge)
}

func TestComposeRoot_LoadsSectionsFromDocument(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	fetcher := &staticFetcher{data: []byte(document)}

	require.NoError(t, settings.ComposeRoot(reg, yamlparser.NewParser(), fetcher))
	require.NoError(t, settings.Compose(reg))
	assert.Equal(t, 0, fetcher.calls, "loading is lazy")

	global, err := registry.Resolve[*settings.GlobalSettings](reg)
	require.NoError(t, err)
	assert.Equal(t, 20, global.TimeOutInMinutes)
	assert.Equal(t, "~/umbraco", global.UmbracoPath)
	assert.True(t, global.IsReservedPathOrURL("/umbraco/backoffice"))

	hosting, err := registry.Resolve[*settings.HostingSettings](reg)
	require.NoError(t, err)
	assert.Equal(t, settings.LocalTempStorageEnvironmentTemp, hosting.LocalTempStorageLocation)

	content, err := registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)
	assert.Equal(t, "robot@example.com", content.NotificationEmailAddress)
	assert.Equal(t, settings.DefaultImageFileTypes(), content.ImageFileTypes)

	security, err := registry.Resolve[*settings.SecuritySection](reg)
	require.NoError(t, err)
	assert.True(t, security.KeepUserLoggedIn)
	assert.Equal(t, 12, security.UserPasswordConfiguration.RequiredLength)
	assert.Equal(t, settings.DefaultMemberPasswordConfiguration(), security.MemberPasswordConfiguration)

	assert.Equal(t, 3, fetcher.calls, "each loaded section reads the document once")

	_, err = registry.Resolve[*settings.ContentSection](reg)
	require.NoError(t, err)
	assert.Equal(t, 3, fetcher.calls)
}

func TestComposeRoot_MissingDocument(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, settings.ComposeRoot(reg, yamlparser.NewParser(), failingFetcher{}))
	require.NoError(t, settings.Compose(reg))

	_, err := registry.Resolve[*settings.ContentSection](reg)
	require.ErrorIs(t, err, config.ErrResourceNotFound)
}

func TestComposeRoot_InvalidDocument(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	fetcher := &staticFetcher{data: []byte(`
umbracoConfiguration:
  settings:
    webRouting:
      urlProviderMode: Sideways
`)}

	require.NoError(t, settings.ComposeRoot(reg, yamlparser.NewParser(), fetcher))

	_, err := registry.Resolve[*settings.UmbracoSection](reg)
	require.ErrorIs(t, err, settings.ErrInvalidSettings)
}
