package settings

import "strings"

// ConfigurationVersion is the settings schema version written to GlobalSettings.ConfigurationStatus
// by a completed install.
const ConfigurationVersion = "8.7.0"

// Reserved entries that are always present regardless of configuration.
const (
	StaticReservedPaths = "~/app_plugins/,~/install/,~/mini-profiler-resources/,"
	StaticReservedUrls  = "~/config/splashes/noNodes.aspx,~/.well-known,"
)

// DefaultImageFileTypes returns the file extensions treated as images.
func DefaultImageFileTypes() []string {
	return []string{"jpeg", "jpg", "gif", "bmp", "png", "tiff", "tif"}
}

// DefaultImageAutoFillProperties returns the autofill mapping for the default upload property.
func DefaultImageAutoFillProperties() []ImagingAutoFillUploadField {
	return []ImagingAutoFillUploadField{
		{
			Alias:               "umbracoFile",
			WidthFieldAlias:     "umbracoWidth",
			HeightFieldAlias:    "umbracoHeight",
			LengthFieldAlias:    "umbracoBytes",
			ExtensionFieldAlias: "umbracoExtension",
		},
	}
}

// DefaultUserPasswordConfiguration returns the password rules for back office users.
func DefaultUserPasswordConfiguration() *PasswordConfiguration {
	return &PasswordConfiguration{
		RequiredLength:                       10,
		HashAlgorithmType:                    "PBKDF2.ASPNETCORE.V3",
		MaxFailedAccessAttemptsBeforeLockout: 5,
	}
}

// DefaultMemberPasswordConfiguration returns the password rules for members.
func DefaultMemberPasswordConfiguration() *PasswordConfiguration {
	return &PasswordConfiguration{
		RequiredLength:                       10,
		HashAlgorithmType:                    "HMACSHA256",
		MaxFailedAccessAttemptsBeforeLockout: 5,
	}
}

// DefaultCharReplacements returns the replacements applied when url segments are generated.
func DefaultCharReplacements() []CharReplacement {
	return []CharReplacement{
		{Char: " ", Replacement: "-"},
		{Char: `"`, Replacement: ""},
		{Char: "'", Replacement: ""},
		{Char: "%", Replacement: ""},
		{Char: ".", Replacement: ""},
		{Char: ";", Replacement: ""},
		{Char: "/", Replacement: ""},
		{Char: `\`, Replacement: ""},
		{Char: ":", Replacement: ""},
		{Char: "#", Replacement: ""},
		{Char: "+", Replacement: "plus"},
		{Char: "*", Replacement: "star"},
		{Char: "&", Replacement: ""},
		{Char: "?", Replacement: ""},
		{Char: "æ", Replacement: "ae"},
		{Char: "ä", Replacement: "ae"},
		{Char: "ø", Replacement: "oe"},
		{Char: "ö", Replacement: "oe"},
		{Char: "å", Replacement: "aa"},
		{Char: "ü", Replacement: "ue"},
		{Char: "ß", Replacement: "ss"},
		{Char: "|", Replacement: "-"},
		{Char: "<", Replacement: ""},
		{Char: ">", Replacement: ""},
	}
}

// ResolveURL maps an application relative path ("~/umbraco") to a root relative url
// ("/umbraco"). Other paths are returned unchanged.
func ResolveURL(virtualPath string) string {
	switch {
	case virtualPath == "~":
		return "/"
	case strings.HasPrefix(virtualPath, "~/"):
		return virtualPath[1:]
	default:
		return virtualPath
	}
}
