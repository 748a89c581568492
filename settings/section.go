package settings

import "slices"

// Section is implemented by every settings section. SectionName is the key of the section
// inside a settings document.
type Section interface {
	SectionName() string
}

// LocalTempStorage selects where local temporary files are written.
type LocalTempStorage string

// Local temp storage locations.
const (
	LocalTempStorageDefault         LocalTempStorage = "Default"
	LocalTempStorageAspNetTemp      LocalTempStorage = "AspNetTemp"
	LocalTempStorageEnvironmentTemp LocalTempStorage = "EnvironmentTemp"
)

// URLMode selects how published content urls are generated.
type URLMode string

// URL provider modes.
const (
	URLModeDefault  URLMode = "Default"
	URLModeRelative URLMode = "Relative"
	URLModeAbsolute URLMode = "Absolute"
	URLModeAuto     URLMode = "Auto"
)

// Valid reports whether m is a known mode.
func (m URLMode) Valid() bool {
	switch m {
	case URLModeDefault, URLModeRelative, URLModeAbsolute, URLModeAuto:
		return true
	default:
		return false
	}
}

// GlobalSettings holds application wide settings.
type GlobalSettings struct {
	ConfigurationStatus      string `json:"configurationStatus"      yaml:"configurationStatus"`
	UseHTTPS                 bool   `json:"useHttps"                 yaml:"useHttps"`
	HideTopLevelNodeFromPath bool   `json:"hideTopLevelNodeFromPath" yaml:"hideTopLevelNodeFromPath"`
	Path                     string `json:"path"                     yaml:"path"`
	TimeOutInMinutes         int    `json:"timeOutInMinutes"         yaml:"timeOutInMinutes"`
	DefaultUILanguage        string `json:"defaultUILanguage"        yaml:"defaultUILanguage"`
	ReservedPaths            string `json:"reservedPaths"            yaml:"reservedPaths"`
	ReservedUrls             string `json:"reservedUrls"             yaml:"reservedUrls"`
	UmbracoPath              string `json:"umbracoPath"              yaml:"umbracoPath"`
	UmbracoMediaPath         string `json:"umbracoMediaPath"         yaml:"umbracoMediaPath"`
	UmbracoCSSPath           string `json:"umbracoCssPath"           yaml:"umbracoCssPath"`
	UmbracoScriptsPath       string `json:"umbracoScriptsPath"       yaml:"umbracoScriptsPath"`
}

// SectionName implements Section.
func (*GlobalSettings) SectionName() string { return "global" }

// Clone returns a copy of s.
func (s *GlobalSettings) Clone() *GlobalSettings {
	if s == nil {
		return nil
	}

	clone := *s

	return &clone
}

// HostingSettings holds settings about the hosting environment.
type HostingSettings struct {
	LocalTempStorageLocation LocalTempStorage `json:"localTempStorageLocation" yaml:"localTempStorageLocation"`
	DebugMode                bool             `json:"debugMode"                yaml:"debugMode"`
}

// SectionName implements Section.
func (*HostingSettings) SectionName() string { return "hosting" }

// Clone returns a copy of s.
func (s *HostingSettings) Clone() *HostingSettings {
	if s == nil {
		return nil
	}

	clone := *s

	return &clone
}

// ImagingAutoFillUploadField names the properties filled in when an image is uploaded to the
// property Alias.
type ImagingAutoFillUploadField struct {
	Alias               string `json:"alias"               yaml:"alias"`
	WidthFieldAlias     string `json:"widthFieldAlias"     yaml:"widthFieldAlias"`
	HeightFieldAlias    string `json:"heightFieldAlias"    yaml:"heightFieldAlias"`
	LengthFieldAlias    string `json:"lengthFieldAlias"    yaml:"lengthFieldAlias"`
	ExtensionFieldAlias string `json:"extensionFieldAlias" yaml:"extensionFieldAlias"`
}

// ContentSection holds content and imaging settings.
type ContentSection struct {
	ImageFileTypes           []string                     `json:"imageFileTypes"           yaml:"imageFileTypes"`
	ImageAutoFillProperties  []ImagingAutoFillUploadField `json:"imageAutoFillProperties"  yaml:"imageAutoFillProperties"`
	NotificationEmailAddress string                       `json:"notificationEmailAddress" yaml:"notificationEmailAddress"`
	DisableHTMLEmail         bool                         `json:"disableHtmlEmail"         yaml:"disableHtmlEmail"`
}

// SectionName implements Section.
func (*ContentSection) SectionName() string { return "content" }

// Clone returns a deep copy of s.
func (s *ContentSection) Clone() *ContentSection {
	if s == nil {
		return nil
	}

	clone := *s
	clone.ImageFileTypes = slices.Clone(s.ImageFileTypes)
	clone.ImageAutoFillProperties = slices.Clone(s.ImageAutoFillProperties)

	return &clone
}

// PasswordConfiguration holds password rules for back office users or members.
type PasswordConfiguration struct {
	RequiredLength                       int    `json:"requiredLength"                       yaml:"requiredLength"`
	RequireNonLetterOrDigit              bool   `json:"requireNonLetterOrDigit"              yaml:"requireNonLetterOrDigit"`
	RequireDigit                         bool   `json:"requireDigit"                         yaml:"requireDigit"`
	RequireLowercase                     bool   `json:"requireLowercase"                     yaml:"requireLowercase"`
	RequireUppercase                     bool   `json:"requireUppercase"                     yaml:"requireUppercase"`
	HashAlgorithmType                    string `json:"hashAlgorithmType"                    yaml:"hashAlgorithmType"`
	MaxFailedAccessAttemptsBeforeLockout int    `json:"maxFailedAccessAttemptsBeforeLockout" yaml:"maxFailedAccessAttemptsBeforeLockout"`
}

// Clone returns a copy of c.
func (c *PasswordConfiguration) Clone() *PasswordConfiguration {
	if c == nil {
		return nil
	}

	clone := *c

	return &clone
}

// SecuritySection holds authentication settings.
type SecuritySection struct {
	KeepUserLoggedIn              bool                   `json:"keepUserLoggedIn"              yaml:"keepUserLoggedIn"`
	HideDisabledUsersInBackoffice bool                   `json:"hideDisabledUsersInBackoffice" yaml:"hideDisabledUsersInBackoffice"`
	AllowPasswordReset            bool                   `json:"allowPasswordReset"            yaml:"allowPasswordReset"`
	UsernameIsEmail               bool                   `json:"usernameIsEmail"               yaml:"usernameIsEmail"`
	AuthCookieName                string                 `json:"authCookieName"                yaml:"authCookieName"`
	AuthCookieDomain              string                 `json:"authCookieDomain"              yaml:"authCookieDomain"`
	UserPasswordConfiguration     *PasswordConfiguration `json:"userPasswordConfiguration"     yaml:"userPasswordConfiguration"`
	MemberPasswordConfiguration   *PasswordConfiguration `json:"memberPasswordConfiguration"   yaml:"memberPasswordConfiguration"`
}

// SectionName implements Section.
func (*SecuritySection) SectionName() string { return "security" }

// Clone returns a deep copy of s.
func (s *SecuritySection) Clone() *SecuritySection {
	if s == nil {
		return nil
	}

	clone := *s
	clone.UserPasswordConfiguration = s.UserPasswordConfiguration.Clone()
	clone.MemberPasswordConfiguration = s.MemberPasswordConfiguration.Clone()

	return &clone
}

// WebRoutingSettings holds url routing settings.
type WebRoutingSettings struct {
	DisableRedirectURLTracking        bool    `json:"disableRedirectUrlTracking"        yaml:"disableRedirectUrlTracking"`
	InternalRedirectPreservesTemplate bool    `json:"internalRedirectPreservesTemplate" yaml:"internalRedirectPreservesTemplate"`
	TrySkipIisCustomErrors            bool    `json:"trySkipIisCustomErrors"            yaml:"trySkipIisCustomErrors"`
	DisableAlternativeTemplates       bool    `json:"disableAlternativeTemplates"       yaml:"disableAlternativeTemplates"`
	URLProviderMode                   URLMode `json:"urlProviderMode"                   yaml:"urlProviderMode"`
}

// SectionName implements Section.
func (*WebRoutingSettings) SectionName() string { return "webRouting" }

// Clone returns a copy of s.
func (s *WebRoutingSettings) Clone() *WebRoutingSettings {
	if s == nil {
		return nil
	}

	clone := *s

	return &clone
}

// CharReplacement replaces Char with Replacement when url segments are generated.
type CharReplacement struct {
	Char        string `json:"char"        yaml:"char"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// RequestHandlerSettings holds request handling settings.
type RequestHandlerSettings struct {
	AddTrailingSlash      bool              `json:"addTrailingSlash"      yaml:"addTrailingSlash"`
	ConvertUrlsToASCII    bool              `json:"convertUrlsToAscii"    yaml:"convertUrlsToAscii"`
	TryConvertUrlsToASCII bool              `json:"tryConvertUrlsToAscii" yaml:"tryConvertUrlsToAscii"`
	CharCollection        []CharReplacement `json:"charCollection"        yaml:"charCollection"`
}

// SectionName implements Section.
func (*RequestHandlerSettings) SectionName() string { return "requestHandler" }

// Clone returns a deep copy of s.
func (s *RequestHandlerSettings) Clone() *RequestHandlerSettings {
	if s == nil {
		return nil
	}

	clone := *s
	clone.CharCollection = slices.Clone(s.CharCollection)

	return &clone
}

// LoggingSettings holds log retention settings.
type LoggingSettings struct {
	// MaxLogAge is in minutes; -1 keeps logs forever.
	MaxLogAge int `json:"maxLogAge" yaml:"maxLogAge"`
}

// SectionName implements Section.
func (*LoggingSettings) SectionName() string { return "logging" }

// Clone returns a copy of s.
func (s *LoggingSettings) Clone() *LoggingSettings {
	if s == nil {
		return nil
	}

	clone := *s

	return &clone
}
