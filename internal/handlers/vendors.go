package handlers

import (
	"net/http"

	"procurement/db"
)

// CreateVendorHandler registers a new vendor. Vendors are active unless
// the payload says otherwise.
func (h *Handler) CreateVendorHandler(w http.ResponseWriter, r *http.Request) {
	vendor := db.Vendor{Active: true}
	if err := h.decodeBody(w, r, &vendor); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&vendor); err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Store.CreateVendor(r.Context(), &vendor); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, vendor)
}

// GetVendorsHandler returns a paginated vendor list ordered by name.
func (h *Handler) GetVendorsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePaginationParams(r)
	vendors, err := h.Store.GetVendors(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vendors)
}

// GetActiveVendorsHandler returns every vendor eligible for RFP sends.
func (h *Handler) GetActiveVendorsHandler(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.Store.GetActiveVendors(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vendors)
}

// GetVendorHandler returns a single vendor by id.
func (h *Handler) GetVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "vendorId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	vendor, err := h.Store.GetVendor(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vendor)
}

// vendorPatch carries the optional fields of a vendor edit. Pointer
// fields distinguish "absent" from "set to zero value".
type vendorPatch struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	Website       *string `json:"website" validate:"omitempty,url"`
	Notes         *string `json:"notes"`
	Active        *bool   `json:"active"`
}

// EditVendorHandler applies a partial update to a vendor.
func (h *Handler) EditVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "vendorId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	var patch vendorPatch
	if err := h.decodeBody(w, r, &patch); err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.validateStruct(&patch); err != nil {
		h.respondError(w, err)
		return
	}

	vendor, err := h.Store.GetVendor(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if patch.Name != nil {
		vendor.Name = *patch.Name
	}
	if patch.Email != nil {
		vendor.Email = *patch.Email
	}
	if patch.ContactPerson != nil {
		vendor.ContactPerson = *patch.ContactPerson
	}
	if patch.Phone != nil {
		vendor.Phone = *patch.Phone
	}
	if patch.Address != nil {
		vendor.Address = *patch.Address
	}
	if patch.City != nil {
		vendor.City = *patch.City
	}
	if patch.Country != nil {
		vendor.Country = *patch.Country
	}
	if patch.Website != nil {
		vendor.Website = *patch.Website
	}
	if patch.Notes != nil {
		vendor.Notes = *patch.Notes
	}
	if patch.Active != nil {
		vendor.Active = *patch.Active
	}

	if err := h.Store.UpdateVendor(r.Context(), vendor); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vendor)
}

// ToggleVendorActiveHandler flips a vendor's active flag.
func (h *Handler) ToggleVendorActiveHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "vendorId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	vendor, err := h.Store.GetVendor(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	vendor.Active = !vendor.Active
	if err := h.Store.UpdateVendor(r.Context(), vendor); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vendor)
}

// DeleteVendorHandler removes a vendor.
func (h *Handler) DeleteVendorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "vendorId")
	if err != nil {
		h.respondError(w, err)
		return
	}

	if err := h.Store.DeleteVendor(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
