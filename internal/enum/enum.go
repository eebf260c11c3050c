package enum

// ── Payment methods (open set, configured via PAYMENT_METHODS; these are the defaults) ──

const (
	PaymentMethodCash    = "cash"
	PaymentMethodPhonePe = "phonepe"
)

// DefaultPaymentMethods is the method set used when none is configured.
var DefaultPaymentMethods = []string{PaymentMethodCash, PaymentMethodPhonePe}

// ── Live feed event types ──

const (
	EventSalesEntryCreated     = "sales_entry.created"
	EventSalesEntryDeleted     = "sales_entry.deleted"
	EventIndividualSaleCreated = "individual_sale.created"
	EventDailySummarySaved     = "daily_summary.saved"
)

// ── Export formats ──

const (
	ExportFormatCSV  = "csv"
	ExportFormatTSV  = "tsv"
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)
