package catalog

import "paperwork/internal/core/domain/model/kernel"

const (
	FineLostDocument    ItemID = "fine-lost-document"
	FineLostReport      ItemID = "fine-lost-report"
	FineLateRenewal     ItemID = "fine-late-renewal"
	FineDamagedDocument ItemID = "fine-damaged-document"
	FineDataMismatch    ItemID = "fine-data-mismatch"

	AddonFineHandling ItemID = "addon-fine-handling"
	AddonTranslation  ItemID = "addon-translation"
	AddonDocumentCopy ItemID = "addon-document-copy"
	AddonUrgent       ItemID = "addon-urgent"
	AddonHomePickup   ItemID = "addon-home-pickup"
)

// Default returns the catalog the desk ships with.
//
// Only the lost-document statutory fee carries a visible charge; the other fines are
// already priced into the base service and cost the customer only the hidden
// per-fine processing surcharge.
func Default() Catalog {
	return New(
		Item{
			ID:            FineLostDocument,
			Name:          "Lost document statutory fee",
			Category:      CategoryFine,
			Amount:        kernel.NewMoney(5000),
			VisibleCharge: true,
		},
		Item{ID: FineLostReport, Name: "Lost document police report", Category: CategoryFine, LostReport: true},
		Item{ID: FineLateRenewal, Name: "Late renewal", Category: CategoryFine},
		Item{ID: FineDamagedDocument, Name: "Damaged document", Category: CategoryFine},
		Item{ID: FineDataMismatch, Name: "Civil record data mismatch", Category: CategoryFine},
		Item{ID: AddonFineHandling, Name: "Fine handling", Category: CategoryAddonService, Automatic: true},
		Item{ID: AddonTranslation, Name: "Certified translation", Category: CategoryAddonService, Manual: true},
		Item{ID: AddonDocumentCopy, Name: "Attested copy", Category: CategoryAddonService, Manual: true},
		Item{ID: AddonUrgent, Name: "Urgent processing", Category: CategoryAddonService, Manual: true},
		Item{ID: AddonHomePickup, Name: "Home pickup", Category: CategoryAddonService, Manual: true},
	)
}
