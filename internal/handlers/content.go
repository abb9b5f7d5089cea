package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rheumassoc/api/internal/models"
	"rheumassoc/api/internal/repository"
)

// Upload stores a file and returns its public URL. The stored name is
// generated server-side; the original name only contributes the extension.
func (h HandlerSet) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_file"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		h.log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func required(values ...*string) bool {
	for _, v := range values {
		if v == nil || *v == "" {
			return false
		}
	}
	return true
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// --- board members ---

func (h HandlerSet) ListBoardMembers(c *gin.Context) {
	items, err := h.boardMembers.List(c.Request.Context(), listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list board members failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetBoardMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.boardMembers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "board_member_not_found", "get board member failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateBoardMember(c *gin.Context) {
	var req models.BoardMemberPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.LastNameRu, req.LastNameUz, req.LastNameEn, req.FirstNameRu, req.FirstNameUz, req.FirstNameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.BoardMember{
		LastNameRu:     *req.LastNameRu,
		LastNameUz:     *req.LastNameUz,
		LastNameEn:     *req.LastNameEn,
		FirstNameRu:    *req.FirstNameRu,
		FirstNameUz:    *req.FirstNameUz,
		FirstNameEn:    *req.FirstNameEn,
		PatronymicRu:   req.PatronymicRu,
		PatronymicUz:   req.PatronymicUz,
		PatronymicEn:   req.PatronymicEn,
		PositionRu:     req.PositionRu,
		PositionUz:     req.PositionUz,
		PositionEn:     req.PositionEn,
		DegreeRu:       req.DegreeRu,
		DegreeUz:       req.DegreeUz,
		DegreeEn:       req.DegreeEn,
		WorkplaceRu:    req.WorkplaceRu,
		WorkplaceUz:    req.WorkplaceUz,
		WorkplaceEn:    req.WorkplaceEn,
		BioRu:          req.BioRu,
		BioUz:          req.BioUz,
		BioEn:          req.BioEn,
		AchievementsRu: req.AchievementsRu,
		AchievementsUz: req.AchievementsUz,
		AchievementsEn: req.AchievementsEn,
		PhotoURL:       req.PhotoURL,
		Email:          req.Email,
		Phone:          req.Phone,
		Order:          intOr(req.Order, 0),
		IsActive:       boolOr(req.IsActive, true),
	}

	created, err := h.boardMembers.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create board member failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateBoardMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.BoardMemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.boardMembers.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "board_member_not_found", "update board member failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteBoardMember(c *gin.Context) {
	h.deleteByID(c, "board_member", h.boardMembers.Delete)
}

// --- partners ---

func (h HandlerSet) ListPartners(c *gin.Context) {
	items, err := h.partners.List(c.Request.Context(), listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list partners failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetPartner(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.partners.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "partner_not_found", "get partner failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreatePartner(c *gin.Context) {
	var req models.PartnerPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.NameRu, req.NameUz, req.NameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.Partner{
		NameRu:        *req.NameRu,
		NameUz:        *req.NameUz,
		NameEn:        *req.NameEn,
		ShortName:     req.ShortName,
		DescriptionRu: req.DescriptionRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		LogoURL:       req.LogoURL,
		WebsiteURL:    req.WebsiteURL,
		CountryRu:     req.CountryRu,
		CountryUz:     req.CountryUz,
		CountryEn:     req.CountryEn,
		Order:         intOr(req.Order, 0),
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.partners.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create partner failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdatePartner(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.PartnerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.partners.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "partner_not_found", "update partner failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeletePartner(c *gin.Context) {
	h.deleteByID(c, "partner", h.partners.Delete)
}

// --- charters ---

func (h HandlerSet) GetActiveCharter(c *gin.Context) {
	item, err := h.charters.GetActive(c.Request.Context())
	if err != nil {
		h.notFoundOrInternal(c, err, "charter_not_found", "get active charter failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) ListCharters(c *gin.Context) {
	skip, limit := pagination(c)
	items, err := h.charters.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("list charters failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetCharter(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.charters.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "charter_not_found", "get charter failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateCharter(c *gin.Context) {
	var req models.CharterPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.TitleRu, req.TitleUz, req.TitleEn, req.FileURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.Charter{
		TitleRu:       *req.TitleRu,
		TitleUz:       *req.TitleUz,
		TitleEn:       *req.TitleEn,
		DescriptionRu: req.DescriptionRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		FileURL:       *req.FileURL,
		Version:       req.Version,
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.charters.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create charter failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateCharter(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.CharterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.charters.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "charter_not_found", "update charter failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteCharter(c *gin.Context) {
	h.deleteByID(c, "charter", h.charters.Delete)
}

// --- chief rheumatologists ---

func (h HandlerSet) ListChiefs(c *gin.Context) {
	items, err := h.chiefs.List(c.Request.Context(), listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list chief rheumatologists failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetChief(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.chiefs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "chief_rheumatologist_not_found", "get chief rheumatologist failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateChief(c *gin.Context) {
	var req models.ChiefRheumatologistPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.LastNameRu, req.LastNameUz, req.LastNameEn, req.FirstNameRu, req.FirstNameUz, req.FirstNameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.ChiefRheumatologist{
		LastNameRu:   *req.LastNameRu,
		LastNameUz:   *req.LastNameUz,
		LastNameEn:   *req.LastNameEn,
		FirstNameRu:  *req.FirstNameRu,
		FirstNameUz:  *req.FirstNameUz,
		FirstNameEn:  *req.FirstNameEn,
		PatronymicRu: req.PatronymicRu,
		PatronymicUz: req.PatronymicUz,
		PatronymicEn: req.PatronymicEn,
		PositionRu:   req.PositionRu,
		PositionUz:   req.PositionUz,
		PositionEn:   req.PositionEn,
		DegreeRu:     req.DegreeRu,
		DegreeUz:     req.DegreeUz,
		DegreeEn:     req.DegreeEn,
		RegionRu:     req.RegionRu,
		RegionUz:     req.RegionUz,
		RegionEn:     req.RegionEn,
		WorkplaceRu:  req.WorkplaceRu,
		WorkplaceUz:  req.WorkplaceUz,
		WorkplaceEn:  req.WorkplaceEn,
		BioRu:        req.BioRu,
		BioUz:        req.BioUz,
		BioEn:        req.BioEn,
		PhotoURL:     req.PhotoURL,
		Email:        req.Email,
		Phone:        req.Phone,
		Order:        intOr(req.Order, 0),
		IsActive:     boolOr(req.IsActive, true),
	}

	created, err := h.chiefs.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create chief rheumatologist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateChief(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.ChiefRheumatologistPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.chiefs.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "chief_rheumatologist_not_found", "update chief rheumatologist failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteChief(c *gin.Context) {
	h.deleteByID(c, "chief_rheumatologist", h.chiefs.Delete)
}

// --- diseases ---

func (h HandlerSet) ListDiseases(c *gin.Context) {
	items, err := h.diseases.List(c.Request.Context(), listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list diseases failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetDisease(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.diseases.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "disease_not_found", "get disease failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateDisease(c *gin.Context) {
	var req models.DiseasePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.NameRu, req.NameUz, req.NameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.Disease{
		NameRu:        *req.NameRu,
		NameUz:        *req.NameUz,
		NameEn:        *req.NameEn,
		ShortName:     req.ShortName,
		DescriptionRu: req.DescriptionRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		SymptomsRu:    req.SymptomsRu,
		SymptomsUz:    req.SymptomsUz,
		SymptomsEn:    req.SymptomsEn,
		TreatmentRu:   req.TreatmentRu,
		TreatmentUz:   req.TreatmentUz,
		TreatmentEn:   req.TreatmentEn,
		ImageURL:      req.ImageURL,
		Order:         intOr(req.Order, 0),
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.diseases.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create disease failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateDisease(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.DiseasePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.diseases.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "disease_not_found", "update disease failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteDisease(c *gin.Context) {
	h.deleteByID(c, "disease", h.diseases.Delete)
}

// --- disease documents ---

func (h HandlerSet) ListDiseaseDocuments(c *gin.Context) {
	var diseaseID *int64
	if raw := c.Query("disease_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_disease_id"})
			return
		}
		diseaseID = &id
	}

	items, err := h.diseases.ListDocuments(c.Request.Context(), diseaseID, listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list disease documents failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetDiseaseDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.diseases.GetDocumentByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "document_not_found", "get disease document failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateDiseaseDocument(c *gin.Context) {
	var req models.DiseaseDocumentPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.TitleRu, req.TitleUz, req.TitleEn, req.FileURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.DiseaseDocument{
		DiseaseID:     req.DiseaseID,
		TitleRu:       *req.TitleRu,
		TitleUz:       *req.TitleUz,
		TitleEn:       *req.TitleEn,
		DescriptionRu: req.DescriptionRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		FileURL:       *req.FileURL,
		DocumentType:  req.DocumentType,
		Order:         intOr(req.Order, 0),
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.diseases.CreateDocument(c.Request.Context(), item)
	if err != nil {
		h.parentNotFoundOrInternal(c, err, "disease_not_found", "create disease document failed")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateDiseaseDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.DiseaseDocumentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.diseases.UpdateDocument(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disease_not_found"})
			return
		}
		h.notFoundOrInternal(c, err, "document_not_found", "update disease document failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteDiseaseDocument(c *gin.Context) {
	h.deleteByID(c, "document", h.diseases.DeleteDocument)
}

// --- centers ---

func (h HandlerSet) ListCenters(c *gin.Context) {
	items, err := h.centers.List(c.Request.Context(), listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list centers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetCenter(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.centers.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "center_not_found", "get center failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) GetCenterWithStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.centers.GetWithStaff(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "center_not_found", "get center with staff failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateCenter(c *gin.Context) {
	var req models.CenterPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if !required(req.NameRu, req.NameUz, req.NameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.Center{
		NameRu:        *req.NameRu,
		NameUz:        *req.NameUz,
		NameEn:        *req.NameEn,
		DescriptionRu: req.DescriptionRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionEn: req.DescriptionEn,
		AddressRu:     req.AddressRu,
		AddressUz:     req.AddressUz,
		AddressEn:     req.AddressEn,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		ImageURL:      req.ImageURL,
		Order:         intOr(req.Order, 0),
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.centers.Create(c.Request.Context(), item)
	if err != nil {
		h.log.Error().Err(err).Msg("create center failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateCenter(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.CenterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.centers.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.notFoundOrInternal(c, err, "center_not_found", "update center failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteCenter(c *gin.Context) {
	h.deleteByID(c, "center", h.centers.Delete)
}

// --- center staff ---

func (h HandlerSet) ListCenterStaff(c *gin.Context) {
	var centerID *int64
	if raw := c.Query("center_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_center_id"})
			return
		}
		centerID = &id
	}

	items, err := h.centers.ListStaff(c.Request.Context(), centerID, listOptions(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list center staff failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h HandlerSet) GetCenterStaffMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.centers.GetStaffByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "staff_not_found", "get center staff failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) CreateCenterStaff(c *gin.Context) {
	var req models.CenterStaffPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if req.CenterID == nil ||
		!required(req.LastNameRu, req.LastNameUz, req.LastNameEn, req.FirstNameRu, req.FirstNameUz, req.FirstNameEn) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_required_fields"})
		return
	}

	item := models.CenterStaff{
		CenterID:      *req.CenterID,
		LastNameRu:    *req.LastNameRu,
		LastNameUz:    *req.LastNameUz,
		LastNameEn:    *req.LastNameEn,
		FirstNameRu:   *req.FirstNameRu,
		FirstNameUz:   *req.FirstNameUz,
		FirstNameEn:   *req.FirstNameEn,
		PatronymicRu:  req.PatronymicRu,
		PatronymicUz:  req.PatronymicUz,
		PatronymicEn:  req.PatronymicEn,
		PositionRu:    req.PositionRu,
		PositionUz:    req.PositionUz,
		PositionEn:    req.PositionEn,
		CredentialsRu: req.CredentialsRu,
		CredentialsUz: req.CredentialsUz,
		CredentialsEn: req.CredentialsEn,
		PhotoURL:      req.PhotoURL,
		Order:         intOr(req.Order, 0),
		IsActive:      boolOr(req.IsActive, true),
	}

	created, err := h.centers.CreateStaff(c.Request.Context(), item)
	if err != nil {
		h.parentNotFoundOrInternal(c, err, "center_not_found", "create center staff failed")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h HandlerSet) UpdateCenterStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch models.CenterStaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	updated, err := h.centers.UpdateStaff(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "center_not_found"})
			return
		}
		h.notFoundOrInternal(c, err, "staff_not_found", "update center staff failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h HandlerSet) DeleteCenterStaff(c *gin.Context) {
	h.deleteByID(c, "staff", h.centers.DeleteStaff)
}

// --- school applications (admin view under /content) ---

func (h HandlerSet) ListSchoolApplications(c *gin.Context) {
	h.AdminListApplications(c)
}

func (h HandlerSet) GetSchoolApplication(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrInternal(c, err, "application_not_found", "get school application failed")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h HandlerSet) UpdateSchoolApplicationStatus(c *gin.Context) {
	h.AdminUpdateApplicationStatus(c)
}
