package service

import (
	"crypto/tls"
	"time"

	"site-security-backend/internal/config"
	apperrors "site-security-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryUser represents a subset of corporate-directory attributes
// returned when operators search for people to register as staff members
type DirectoryUser struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	SN          string `json:"sn"`
	Mail        string `json:"mail"`
	Mobile      string `json:"mobile"`
}

// LDAPService provides corporate staff-directory search
type LDAPService struct {
	cfg *config.Config
}

// NewLDAPService creates a new LDAP service
func NewLDAPService(cfg *config.Config) *LDAPService {
	return &LDAPService{cfg: cfg}
}

// SearchUsersByCN searches directory users by common name (cn prefix match).
// The search is bounded by LDAP_TIMEOUT_SEC on both connection and query.
func (s *LDAPService) SearchUsersByCN(cn string) ([]DirectoryUser, error) {
	if s.cfg.LDAPHost == "" || s.cfg.LDAPBindDN == "" || s.cfg.LDAPBaseDN == "" {
		return nil, apperrors.ErrDirectoryNotConfigured
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(cn=" + ldap.EscapeFilter(cn) + "*)"
	attrs := []string{"displayName", "givenName", "sn", "mail", "mobile"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryUser, 0, len(res.Entries))
	for _, e := range res.Entries {
		get := func(a string) string { return e.GetAttributeValue(a) }
		out = append(out, DirectoryUser{
			DN:          e.DN,
			DisplayName: get("displayName"),
			GivenName:   get("givenName"),
			SN:          get("sn"),
			Mail:        get("mail"),
			Mobile:      get("mobile"),
		})
	}

	return out, nil
}
