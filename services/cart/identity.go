package cart

import (
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
)

// lineItemID derives a stable identifier for a (menu item, customizations)
// pair, so that identical customized selections merge into one line item.
// The customizations are brought into canonical form first: the id must not
// depend on the order in which extras were ticked.
func lineItemID(menuItemUID string, customizations Customizations) string {
	if customizations.IsZero() {
		return menuItemUID
	}

	sha2 := sha256.Sum256([]byte(customizations.canonical()))
	suffix := base64.RawURLEncoding.EncodeToString(sha2[:])

	return menuItemUID + ":" + suffix[:12]
}

func (cu Customizations) canonical() string {
	extras := make([]string, len(cu.Extras))
	for i, e := range cu.Extras {
		extras[i] = strings.ToLower(strings.TrimSpace(e))
	}
	sort.Strings(extras)

	parts := []string{
		"size=" + strings.ToLower(strings.TrimSpace(cu.Size)),
		"extras=" + strings.Join(extras, ","),
		"instructions=" + strings.TrimSpace(cu.Instructions),
	}

	return strings.Join(parts, ";")
}
