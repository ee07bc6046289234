package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"package-tracker/internal/services"
	"package-tracker/pkg/logger"
)

type PackageHandler struct {
	packageService *services.PackageService
	exportService  *services.ExportService
}

func NewPackageHandler(packageService *services.PackageService, exportService *services.ExportService) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		exportService:  exportService,
	}
}

type createPackageRequest struct {
	Destinatario     string  `json:"destinatario"`
	Direccion        string  `json:"direccion"`
	DeliveryPersonID *string `json:"delivery_person_id"`
}

type updatePackageRequest struct {
	Destinatario     string  `json:"destinatario"`
	Direccion        string  `json:"direccion"`
	DeliveryPersonID *string `json:"delivery_person_id"`
	Status           string  `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// ListPackages returns all packages with denormalized assignee fields,
// newest created first
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.packageService.ListPackages()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, packages)
}

// CreatePackage creates a new pending package
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pkg, err := h.packageService.CreatePackage(req.Destinatario, req.Direccion, req.DeliveryPersonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg)
}

// GetPackage returns a single package by ID
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetPackage(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage overwrites all mutable fields of a package
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req updatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pkg, err := h.packageService.UpdatePackage(
		c.Param("id"), req.Destinatario, req.Direccion, req.DeliveryPersonID, req.Status,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// UpdatePackageStatus applies a status transition
func (h *PackageHandler) UpdatePackageStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pkg, err := h.packageService.SetPackageStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// DeletePackage removes a package
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.DeletePackage(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPackages streams an xlsx report of all packages
func (h *PackageHandler) ExportPackages(c *gin.Context) {
	packages, err := h.packageService.ListPackages()
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.exportService.BuildPackagesReport(packages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="packages_report.xlsx"`)
	if err := report.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write packages report")
	}
}

// MapData returns the packages currently in transit (legacy endpoint)
func (h *PackageHandler) MapData(c *gin.Context) {
	packages, err := h.packageService.ListInTransitPackages()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, packages)
}

// Locations redirects to the package list (legacy endpoint)
func (h *PackageHandler) Locations(c *gin.Context) {
	c.Redirect(http.StatusFound, "/api/packages")
}
