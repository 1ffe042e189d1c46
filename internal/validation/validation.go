package validation

import (
	"net"
	"net/url"
	"strings"

	"schemebot/internal/models"
)

// MaxQueryLength bounds the size of a free-text query in bytes.
const MaxQueryLength = 500

// User-facing validation messages.
const (
	MsgEmptyQuery       = "Please enter a query."
	MsgQueryTooLong     = "Your query is too long."
	MsgIncompleteForm   = "Please fill all fields!"
	MsgFormSubmitted    = "Form successfully submitted!"
	msgURLRequired      = "URL is required"
	msgURLInvalid       = "Invalid URL format"
	msgURLScheme        = "URL must use http:// or https:// scheme"
	msgURLHost          = "URL must have a valid host"
	msgURLUnresolvable  = "Cannot resolve hostname"
	msgURLPrivateTarget = "URL points to a private or reserved IP address"
)

// NormalizeQuery trims surrounding whitespace from a user query.
// Case is left alone; the resolver folds it.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

// ValidateQuery checks a normalized query before it is resolved.
func ValidateQuery(q string) (bool, string) {
	if q == "" {
		return false, MsgEmptyQuery
	}
	if len(q) > MaxQueryLength {
		return false, MsgQueryTooLong
	}
	return true, ""
}

// ValidateApplication checks that every form field has a value.
// Date of birth and passing year are free text and are not parsed.
func ValidateApplication(form models.ApplicationForm) (bool, string) {
	if form.Name == "" || form.DateOfBirth == "" || form.PassingYear == "" {
		return false, MsgIncompleteForm
	}
	return true, ""
}

// ValidateURL checks that a URL is absolute and uses http or https, so that
// javascript:, data: and similar schemes never reach a redirect or a link.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, msgURLRequired
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, msgURLInvalid
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false, msgURLScheme
	}

	if u.Host == "" {
		return false, msgURLHost
	}

	return true, ""
}

// Cloud metadata endpoints (AWS/GCP, Azure).
var metadataIPs = []net.IP{
	net.ParseIP("169.254.169.254"),
	net.ParseIP("168.63.129.16"),
}

// IsPrivateIP reports whether ip is loopback, link-local, private,
// unspecified or a cloud metadata address.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}
	for _, m := range metadataIPs {
		if ip.Equal(m) {
			return true
		}
	}
	return false
}

// IsPrivateHost resolves host (port optional) and reports whether any of its
// addresses is private. Unresolvable hosts count as private.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return true, err
	}

	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}
	return false, nil
}

// ValidateURLForHealthCheck validates an apply URL before the link checker
// contacts it.
func ValidateURLForHealthCheck(urlStr string) (bool, string) {
	if valid, msg := ValidateURL(urlStr); !valid {
		return false, msg
	}

	u, _ := url.Parse(urlStr)

	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, msgURLUnresolvable
	}
	if isPrivate {
		return false, msgURLPrivateTarget
	}
	return true, ""
}
