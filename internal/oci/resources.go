package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// AvailabilityDomainInfo is the reshaped form of an availability domain.
type AvailabilityDomainInfo struct {
	Name          string `json:"name"`
	ID            string `json:"id"`
	CompartmentID string `json:"compartment_id"`
}

// ListAvailabilityDomains lists the availability domains visible to a
// compartment.
func ListAvailabilityDomains(ctx context.Context, client IdentityAPI, compartmentID string) ([]AvailabilityDomainInfo, error) {
	resp, err := client.ListAvailabilityDomains(ctx, identity.ListAvailabilityDomainsRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, err
	}
	ads := []AvailabilityDomainInfo{}
	for _, ad := range resp.Items {
		ads = append(ads, AvailabilityDomainInfo{
			Name:          str(ad.Name),
			ID:            str(ad.Id),
			CompartmentID: str(ad.CompartmentId),
		})
	}
	return ads, nil
}

// FaultDomainInfo is the reshaped form of a fault domain.
type FaultDomainInfo struct {
	Name               string `json:"name"`
	ID                 string `json:"id"`
	CompartmentID      string `json:"compartment_id"`
	AvailabilityDomain string `json:"availability_domain"`
}

// ListFaultDomains lists the fault domains of one availability domain.
func ListFaultDomains(ctx context.Context, client IdentityAPI, compartmentID, availabilityDomain string) ([]FaultDomainInfo, error) {
	resp, err := client.ListFaultDomains(ctx, identity.ListFaultDomainsRequest{
		CompartmentId:      common.String(compartmentID),
		AvailabilityDomain: common.String(availabilityDomain),
	})
	if err != nil {
		return nil, err
	}
	fds := []FaultDomainInfo{}
	for _, fd := range resp.Items {
		fds = append(fds, FaultDomainInfo{
			Name:               str(fd.Name),
			ID:                 str(fd.Id),
			CompartmentID:      str(fd.CompartmentId),
			AvailabilityDomain: str(fd.AvailabilityDomain),
		})
	}
	return fds, nil
}

// LaunchOptionsInfo carries the launch options of an image.
type LaunchOptionsInfo struct {
	BootVolumeType                  string `json:"boot_volume_type"`
	Firmware                        string `json:"firmware"`
	NetworkType                     string `json:"network_type"`
	RemoteDataVolumeType            string `json:"remote_data_volume_type"`
	IsPvEncryptionInTransitEnabled  bool   `json:"is_pv_encryption_in_transit_enabled"`
	IsConsistentVolumeNamingEnabled bool   `json:"is_consistent_volume_naming_enabled"`
}

// ImageSummary is the list-level view of a compute image.
type ImageSummary struct {
	ID                     string `json:"id"`
	DisplayName            string `json:"display_name"`
	OperatingSystem        string `json:"operating_system"`
	OperatingSystemVersion string `json:"operating_system_version"`
	LifecycleState         string `json:"lifecycle_state"`
	TimeCreated            string `json:"time_created"`
	CompartmentID          string `json:"compartment_id,omitempty"`
	SizeInMBs              *int64 `json:"size_in_mbs"`
	CreateImageAllowed     bool   `json:"create_image_allowed"`
	LaunchMode             string `json:"launch_mode,omitempty"`
	BaseImageID            string `json:"base_image_id,omitempty"`
}

// ImageDetails is the full view of a compute image.
type ImageDetails struct {
	ImageSummary
	LaunchOptions *LaunchOptionsInfo `json:"launch_options,omitempty"`
}

func newImageSummary(image core.Image) ImageSummary {
	return ImageSummary{
		ID:                     str(image.Id),
		DisplayName:            str(image.DisplayName),
		OperatingSystem:        str(image.OperatingSystem),
		OperatingSystemVersion: str(image.OperatingSystemVersion),
		LifecycleState:         string(image.LifecycleState),
		TimeCreated:            timeStr(image.TimeCreated),
		CompartmentID:          str(image.CompartmentId),
		SizeInMBs:              image.SizeInMBs,
		CreateImageAllowed:     boolVal(image.CreateImageAllowed),
		LaunchMode:             string(image.LaunchMode),
		BaseImageID:            str(image.BaseImageId),
	}
}

// ListImages lists the images available to a compartment, optionally
// filtered by operating system.
func ListImages(ctx context.Context, client ComputeAPI, compartmentID, operatingSystem string) ([]ImageSummary, error) {
	req := core.ListImagesRequest{CompartmentId: common.String(compartmentID)}
	if operatingSystem != "" {
		req.OperatingSystem = common.String(operatingSystem)
	}

	images := []ImageSummary{}
	for {
		resp, err := client.ListImages(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, image := range resp.Items {
			images = append(images, newImageSummary(image))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return images, nil
}

// GetImage returns a single image including its launch options.
func GetImage(ctx context.Context, client ComputeAPI, imageID string) (*ImageDetails, error) {
	resp, err := client.GetImage(ctx, core.GetImageRequest{ImageId: common.String(imageID)})
	if err != nil {
		return nil, err
	}
	image := resp.Image

	details := &ImageDetails{ImageSummary: newImageSummary(image)}
	if image.LaunchOptions != nil {
		details.LaunchOptions = &LaunchOptionsInfo{
			BootVolumeType:                  string(image.LaunchOptions.BootVolumeType),
			Firmware:                        string(image.LaunchOptions.Firmware),
			NetworkType:                     string(image.LaunchOptions.NetworkType),
			RemoteDataVolumeType:            string(image.LaunchOptions.RemoteDataVolumeType),
			IsPvEncryptionInTransitEnabled:  boolVal(image.LaunchOptions.IsPvEncryptionInTransitEnabled),
			IsConsistentVolumeNamingEnabled: boolVal(image.LaunchOptions.IsConsistentVolumeNamingEnabled),
		}
	}
	return details, nil
}

// ShapeOcpuOptions is the flexible OCPU range of a shape.
type ShapeOcpuOptions struct {
	Min *float32 `json:"min"`
	Max *float32 `json:"max"`
}

// ShapeMemoryOptions is the flexible memory range of a shape.
type ShapeMemoryOptions struct {
	MinInGBs            *float32 `json:"min_in_gbs"`
	MaxInGBs            *float32 `json:"max_in_gbs"`
	DefaultPerOcpuInGBs *float32 `json:"default_per_ocpu_in_gbs,omitempty"`
}

// ShapeBandwidthOptions is the flexible networking bandwidth range of a
// shape.
type ShapeBandwidthOptions struct {
	MinInGbps *float32 `json:"min_in_gbps"`
	MaxInGbps *float32 `json:"max_in_gbps"`
}

// ShapeInfo is the reshaped form of a compute shape.
type ShapeInfo struct {
	Shape                       string                 `json:"shape"`
	ProcessorDescription        string                 `json:"processor_description,omitempty"`
	Ocpus                       *float32               `json:"ocpus"`
	MemoryInGBs                 *float32               `json:"memory_in_gbs"`
	NetworkingBandwidthInGbps   *float32               `json:"networking_bandwidth_in_gbps,omitempty"`
	MaxVnicAttachments          *int                   `json:"max_vnic_attachments,omitempty"`
	Gpus                        *int                   `json:"gpus,omitempty"`
	LocalDisks                  *int                   `json:"local_disks,omitempty"`
	OcpuOptions                 *ShapeOcpuOptions      `json:"ocpu_options,omitempty"`
	MemoryOptions               *ShapeMemoryOptions    `json:"memory_options,omitempty"`
	NetworkingBandwidthOptions  *ShapeBandwidthOptions `json:"networking_bandwidth_options,omitempty"`
}

// ListShapes lists the compute shapes available to a compartment,
// optionally scoped to one availability domain.
func ListShapes(ctx context.Context, client ComputeAPI, compartmentID, availabilityDomain string) ([]ShapeInfo, error) {
	req := core.ListShapesRequest{CompartmentId: common.String(compartmentID)}
	if availabilityDomain != "" {
		req.AvailabilityDomain = common.String(availabilityDomain)
	}

	shapes := []ShapeInfo{}
	seen := map[string]bool{}
	for {
		resp, err := client.ListShapes(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, shape := range resp.Items {
			name := str(shape.Shape)
			// The service repeats shapes per image; keep one entry each.
			if seen[name] {
				continue
			}
			seen[name] = true

			info := ShapeInfo{
				Shape:                     name,
				ProcessorDescription:      str(shape.ProcessorDescription),
				Ocpus:                     shape.Ocpus,
				MemoryInGBs:               shape.MemoryInGBs,
				NetworkingBandwidthInGbps: shape.NetworkingBandwidthInGbps,
				MaxVnicAttachments:        shape.MaxVnicAttachments,
				Gpus:                      shape.Gpus,
				LocalDisks:                shape.LocalDisks,
			}
			if shape.OcpuOptions != nil {
				info.OcpuOptions = &ShapeOcpuOptions{Min: shape.OcpuOptions.Min, Max: shape.OcpuOptions.Max}
			}
			if shape.MemoryOptions != nil {
				info.MemoryOptions = &ShapeMemoryOptions{
					MinInGBs:            shape.MemoryOptions.MinInGBs,
					MaxInGBs:            shape.MemoryOptions.MaxInGBs,
					DefaultPerOcpuInGBs: shape.MemoryOptions.DefaultPerOcpuInGBs,
				}
			}
			if shape.NetworkingBandwidthOptions != nil {
				info.NetworkingBandwidthOptions = &ShapeBandwidthOptions{
					MinInGbps: shape.NetworkingBandwidthOptions.MinInGbps,
					MaxInGbps: shape.NetworkingBandwidthOptions.MaxInGbps,
				}
			}
			shapes = append(shapes, info)
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return shapes, nil
}

// RegionInfo is the reshaped form of an OCI region.
type RegionInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ListRegions lists all OCI regions.
func ListRegions(ctx context.Context, client IdentityAPI) ([]RegionInfo, error) {
	resp, err := client.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	regions := []RegionInfo{}
	for _, region := range resp.Items {
		regions = append(regions, RegionInfo{
			Key:  str(region.Key),
			Name: str(region.Name),
		})
	}
	return regions, nil
}

// TenancyInfo is the reshaped form of the tenancy record.
type TenancyInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	HomeRegionKey string `json:"home_region_key"`
}

// GetTenancyInfo returns the tenancy record.
func GetTenancyInfo(ctx context.Context, client IdentityAPI, tenancyID string) (*TenancyInfo, error) {
	resp, err := client.GetTenancy(ctx, identity.GetTenancyRequest{TenancyId: common.String(tenancyID)})
	if err != nil {
		return nil, err
	}
	tenancy := resp.Tenancy
	return &TenancyInfo{
		ID:            str(tenancy.Id),
		Name:          str(tenancy.Name),
		Description:   str(tenancy.Description),
		HomeRegionKey: str(tenancy.HomeRegionKey),
	}, nil
}
