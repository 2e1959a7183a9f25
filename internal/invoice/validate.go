// Package invoice projects bill records into a renderable document model
// for the external print/PDF collaborators. It validates, shapes, and
// names the document; rasterization stays outside this package.
package invoice

import (
	"errors"

	"github.com/krishgarg-code/BILL-GENRATOR/internal/model"
)

// Export gate failures. Both are recoverable: no document is produced and
// the bill set is untouched.
var (
	ErrMissingRequiredFields = errors.New("please fill required fields and add at least one item for the current bill")
	ErrNoValidBills          = errors.New("please ensure at least one bill has party name and items")
)

// ValidateForExport applies the kind-specific gate. Scrap bills require
// the current bill to be complete; ingot bills require at least one
// printable bill anywhere in the set.
func ValidateForExport(kind model.BillKind, bills []model.Bill, currentIndex int) error {
	if kind == model.KindIngot {
		for _, b := range bills {
			if b.FormData.PartyName != "" && len(b.Items) > 0 {
				return nil
			}
		}
		return ErrNoValidBills
	}

	if currentIndex < 0 || currentIndex >= len(bills) {
		return ErrMissingRequiredFields
	}
	current := bills[currentIndex]
	if current.FormData.PartyName == "" ||
		current.FormData.Date == "" ||
		current.FormData.VehicleNumber == "" ||
		len(current.Items) == 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
