package models

import "strings"

const (
	contactSeparator = " | "
	phonePrefix      = "전화: "
	emailPrefix      = "이메일: "
)

// CombineContactInfo joins a phone number and an optional email address into
// the single contact_info column format: "전화: {phone}" plus
// " | 이메일: {email}" when an email is given.
func CombineContactInfo(phone, email string) string {
	parts := []string{phonePrefix + phone}
	if email != "" {
		parts = append(parts, emailPrefix+email)
	}
	return strings.Join(parts, contactSeparator)
}

// SplitContactInfo reverses CombineContactInfo. It is total: malformed or
// empty input yields empty phone and email rather than an error.
func SplitContactInfo(contactInfo string) (phone, email string) {
	if contactInfo == "" {
		return "", ""
	}
	for _, part := range strings.Split(contactInfo, contactSeparator) {
		switch {
		case strings.HasPrefix(part, phonePrefix):
			phone = strings.TrimPrefix(part, phonePrefix)
		case strings.HasPrefix(part, emailPrefix):
			email = strings.TrimPrefix(part, emailPrefix)
		}
	}
	return phone, email
}

// JoinList joins list items into the comma-separated storage form.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// SplitList parses the comma-separated storage form back into a list,
// trimming whitespace and dropping empty entries. Total like SplitContactInfo.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
