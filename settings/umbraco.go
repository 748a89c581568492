package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings is returned by Validate for values outside their allowed range.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrSectionMissing is returned when a sub-section is derived from a root without it.
	ErrSectionMissing = errors.New("settings section missing")
)

// UmbracoSection is the root settings section. Content, Security and the other sub-sections
// are derived from it during composition.
type UmbracoSection struct {
	Content        *ContentSection         `json:"content"        yaml:"content"`
	Security       *SecuritySection        `json:"security"       yaml:"security"`
	RequestHandler *RequestHandlerSettings `json:"requestHandler" yaml:"requestHandler"`
	Logging        *LoggingSettings        `json:"logging"        yaml:"logging"`
	WebRouting     *WebRoutingSettings     `json:"webRouting"     yaml:"webRouting"`
}

// SectionName implements Section.
func (*UmbracoSection) SectionName() string { return "settings" }

// Clone returns a deep copy of s.
func (s *UmbracoSection) Clone() *UmbracoSection {
	if s == nil {
		return nil
	}

	return &UmbracoSection{
		Content:        s.Content.Clone(),
		Security:       s.Security.Clone(),
		RequestHandler: s.RequestHandler.Clone(),
		Logging:        s.Logging.Clone(),
		WebRouting:     s.WebRouting.Clone(),
	}
}

// SetDefaults allocates missing sub-sections and fills the imaging and routing defaults that a
// settings document may leave out. It implements config.Defaulter.
func (s *UmbracoSection) SetDefaults() bool {
	changed := false

	if s.Content == nil {
		s.Content = &ContentSection{}
		changed = true
	}

	if len(s.Content.ImageFileTypes) == 0 {
		s.Content.ImageFileTypes = DefaultImageFileTypes()
		changed = true
	}

	if s.Content.ImageAutoFillProperties == nil {
		s.Content.ImageAutoFillProperties = DefaultImageAutoFillProperties()
		changed = true
	}

	if s.Security == nil {
		s.Security = &SecuritySection{}
		changed = true
	}

	if s.Security.UserPasswordConfiguration == nil {
		s.Security.UserPasswordConfiguration = DefaultUserPasswordConfiguration()
		changed = true
	}

	if s.Security.MemberPasswordConfiguration == nil {
		s.Security.MemberPasswordConfiguration = DefaultMemberPasswordConfiguration()
		changed = true
	}

	if s.RequestHandler == nil {
		s.RequestHandler = &RequestHandlerSettings{AddTrailingSlash: true, CharCollection: DefaultCharReplacements()}
		changed = true
	}

	if s.Logging == nil {
		s.Logging = &LoggingSettings{MaxLogAge: -1}
		changed = true
	}

	if s.WebRouting == nil {
		s.WebRouting = &WebRoutingSettings{}
		changed = true
	}

	if s.WebRouting.URLProviderMode == "" {
		s.WebRouting.URLProviderMode = URLModeAuto
		changed = true
	}

	return changed
}

// Validate implements config.Validator.
func (s *UmbracoSection) Validate() error {
	if s.Security != nil {
		err := s.Security.UserPasswordConfiguration.validate("userPasswordConfiguration")
		if err != nil {
			return err
		}

		err = s.Security.MemberPasswordConfiguration.validate("memberPasswordConfiguration")
		if err != nil {
			return err
		}
	}

	if s.WebRouting != nil && s.WebRouting.URLProviderMode != "" && !s.WebRouting.URLProviderMode.Valid() {
		return fmt.Errorf("%w: webRouting: unknown urlProviderMode %q", ErrInvalidSettings, s.WebRouting.URLProviderMode)
	}

	if s.Logging != nil && s.Logging.MaxLogAge < -1 {
		return fmt.Errorf("%w: logging: maxLogAge must be -1 or positive, got %d", ErrInvalidSettings, s.Logging.MaxLogAge)
	}

	return nil
}

func (c *PasswordConfiguration) validate(name string) error {
	if c == nil {
		return nil
	}

	if c.RequiredLength < 0 {
		return fmt.Errorf("%w: %s: requiredLength must not be negative", ErrInvalidSettings, name)
	}

	if c.MaxFailedAccessAttemptsBeforeLockout < 0 {
		return fmt.Errorf("%w: %s: maxFailedAccessAttemptsBeforeLockout must not be negative", ErrInvalidSettings, name)
	}

	return nil
}
