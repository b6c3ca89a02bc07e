package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/filestorage"
	"github.com/oracle/oci-go-sdk/v65/objectstorage"
)

// BucketSummary is the reshaped form of an Object Storage bucket listing
// entry.
type BucketSummary struct {
	Name          string `json:"name"`
	Namespace     string `json:"namespace"`
	CompartmentID string `json:"compartment_id"`
	CreatedBy     string `json:"created_by"`
	TimeCreated   string `json:"time_created"`
	Etag          string `json:"etag"`
}

// BucketDetails is the reshaped form of a single bucket.
type BucketDetails struct {
	BucketSummary
	PublicAccessType          string `json:"public_access_type"`
	StorageTier               string `json:"storage_tier"`
	ObjectEventsEnabled       bool   `json:"object_events_enabled"`
	Versioning                string `json:"versioning"`
	ReplicationEnabled        bool   `json:"replication_enabled"`
	IsReadOnly                bool   `json:"is_read_only"`
	ObjectLifecyclePolicyEtag string `json:"object_lifecycle_policy_etag"`
}

// ResolveNamespace returns the tenancy's Object Storage namespace.
func ResolveNamespace(ctx context.Context, client ObjectStorageAPI) (string, error) {
	resp, err := client.GetNamespace(ctx, objectstorage.GetNamespaceRequest{})
	if err != nil {
		return "", err
	}
	return str(resp.Value), nil
}

// ListBuckets lists all buckets in a compartment. An empty namespaceName
// is resolved against the tenancy.
func ListBuckets(ctx context.Context, client ObjectStorageAPI, compartmentID, namespaceName string) ([]BucketSummary, error) {
	if namespaceName == "" {
		ns, err := ResolveNamespace(ctx, client)
		if err != nil {
			return nil, err
		}
		namespaceName = ns
	}

	buckets := []BucketSummary{}
	req := objectstorage.ListBucketsRequest{
		NamespaceName: common.String(namespaceName),
		CompartmentId: common.String(compartmentID),
	}
	for {
		resp, err := client.ListBuckets(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, bucket := range resp.Items {
			buckets = append(buckets, BucketSummary{
				Name:          str(bucket.Name),
				Namespace:     str(bucket.Namespace),
				CompartmentID: str(bucket.CompartmentId),
				CreatedBy:     str(bucket.CreatedBy),
				TimeCreated:   timeStr(bucket.TimeCreated),
				Etag:          str(bucket.Etag),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return buckets, nil
}

// GetBucket returns a single bucket. An empty namespaceName is resolved
// against the tenancy.
func GetBucket(ctx context.Context, client ObjectStorageAPI, namespaceName, bucketName string) (*BucketDetails, error) {
	if namespaceName == "" {
		ns, err := ResolveNamespace(ctx, client)
		if err != nil {
			return nil, err
		}
		namespaceName = ns
	}

	resp, err := client.GetBucket(ctx, objectstorage.GetBucketRequest{
		NamespaceName: common.String(namespaceName),
		BucketName:    common.String(bucketName),
	})
	if err != nil {
		return nil, err
	}
	bucket := resp.Bucket
	return &BucketDetails{
		BucketSummary: BucketSummary{
			Name:          str(bucket.Name),
			Namespace:     str(bucket.Namespace),
			CompartmentID: str(bucket.CompartmentId),
			CreatedBy:     str(bucket.CreatedBy),
			TimeCreated:   timeStr(bucket.TimeCreated),
			Etag:          str(bucket.Etag),
		},
		PublicAccessType:          string(bucket.PublicAccessType),
		StorageTier:               string(bucket.StorageTier),
		ObjectEventsEnabled:       boolVal(bucket.ObjectEventsEnabled),
		Versioning:                string(bucket.Versioning),
		ReplicationEnabled:        boolVal(bucket.ReplicationEnabled),
		IsReadOnly:                boolVal(bucket.IsReadOnly),
		ObjectLifecyclePolicyEtag: str(bucket.ObjectLifecyclePolicyEtag),
	}, nil
}

// VolumeInfo is the reshaped form of a block volume.
type VolumeInfo struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	CompartmentID      string `json:"compartment_id"`
	AvailabilityDomain string `json:"availability_domain"`
	SizeInMBs          *int64 `json:"size_in_mbs"`
	SizeInGBs          *int64 `json:"size_in_gbs"`
	LifecycleState     string `json:"lifecycle_state"`
	TimeCreated        string `json:"time_created"`
	VolumeGroupID      string `json:"volume_group_id,omitempty"`
	IsHydrated         bool   `json:"is_hydrated"`
	VpusPerGB          *int64 `json:"vpus_per_gb"`
	IsAutoTuneEnabled  bool   `json:"is_auto_tune_enabled"`
	AutoTunedVpusPerGB *int64 `json:"auto_tuned_vpus_per_gb"`
	KmsKeyID           string `json:"kms_key_id,omitempty"`
}

func newVolumeInfo(volume core.Volume) VolumeInfo {
	return VolumeInfo{
		ID:                 str(volume.Id),
		DisplayName:        str(volume.DisplayName),
		CompartmentID:      str(volume.CompartmentId),
		AvailabilityDomain: str(volume.AvailabilityDomain),
		SizeInMBs:          volume.SizeInMBs,
		SizeInGBs:          volume.SizeInGBs,
		LifecycleState:     string(volume.LifecycleState),
		TimeCreated:        timeStr(volume.TimeCreated),
		VolumeGroupID:      str(volume.VolumeGroupId),
		IsHydrated:         boolVal(volume.IsHydrated),
		VpusPerGB:          volume.VpusPerGB,
		IsAutoTuneEnabled:  boolVal(volume.IsAutoTuneEnabled),
		AutoTunedVpusPerGB: volume.AutoTunedVpusPerGB,
		KmsKeyID:           str(volume.KmsKeyId),
	}
}

// ListVolumes lists all block volumes in a compartment.
func ListVolumes(ctx context.Context, client BlockStorageAPI, compartmentID string) ([]VolumeInfo, error) {
	volumes := []VolumeInfo{}
	req := core.ListVolumesRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListVolumes(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, volume := range resp.Items {
			volumes = append(volumes, newVolumeInfo(volume))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return volumes, nil
}

// GetVolume returns a single block volume.
func GetVolume(ctx context.Context, client BlockStorageAPI, volumeID string) (*VolumeInfo, error) {
	resp, err := client.GetVolume(ctx, core.GetVolumeRequest{VolumeId: common.String(volumeID)})
	if err != nil {
		return nil, err
	}
	info := newVolumeInfo(resp.Volume)
	return &info, nil
}

// BootVolumeInfo is the reshaped form of a boot volume.
type BootVolumeInfo struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	CompartmentID      string `json:"compartment_id"`
	AvailabilityDomain string `json:"availability_domain"`
	SizeInMBs          *int64 `json:"size_in_mbs"`
	SizeInGBs          *int64 `json:"size_in_gbs"`
	LifecycleState     string `json:"lifecycle_state"`
	TimeCreated        string `json:"time_created"`
	IsHydrated         bool   `json:"is_hydrated"`
	VpusPerGB          *int64 `json:"vpus_per_gb"`
	IsAutoTuneEnabled  bool   `json:"is_auto_tune_enabled"`
	AutoTunedVpusPerGB *int64 `json:"auto_tuned_vpus_per_gb"`
	KmsKeyID           string `json:"kms_key_id,omitempty"`
}

func newBootVolumeInfo(bv core.BootVolume) BootVolumeInfo {
	return BootVolumeInfo{
		ID:                 str(bv.Id),
		DisplayName:        str(bv.DisplayName),
		CompartmentID:      str(bv.CompartmentId),
		AvailabilityDomain: str(bv.AvailabilityDomain),
		SizeInMBs:          bv.SizeInMBs,
		SizeInGBs:          bv.SizeInGBs,
		LifecycleState:     string(bv.LifecycleState),
		TimeCreated:        timeStr(bv.TimeCreated),
		IsHydrated:         boolVal(bv.IsHydrated),
		VpusPerGB:          bv.VpusPerGB,
		IsAutoTuneEnabled:  boolVal(bv.IsAutoTuneEnabled),
		AutoTunedVpusPerGB: bv.AutoTunedVpusPerGB,
		KmsKeyID:           str(bv.KmsKeyId),
	}
}

// ListBootVolumes lists boot volumes in a compartment and availability
// domain (the service scopes boot volume listings per AD).
func ListBootVolumes(ctx context.Context, client BlockStorageAPI, availabilityDomain, compartmentID string) ([]BootVolumeInfo, error) {
	bootVolumes := []BootVolumeInfo{}
	req := core.ListBootVolumesRequest{
		AvailabilityDomain: common.String(availabilityDomain),
		CompartmentId:      common.String(compartmentID),
	}
	for {
		resp, err := client.ListBootVolumes(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, bv := range resp.Items {
			bootVolumes = append(bootVolumes, newBootVolumeInfo(bv))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return bootVolumes, nil
}

// GetBootVolume returns a single boot volume.
func GetBootVolume(ctx context.Context, client BlockStorageAPI, bootVolumeID string) (*BootVolumeInfo, error) {
	resp, err := client.GetBootVolume(ctx, core.GetBootVolumeRequest{BootVolumeId: common.String(bootVolumeID)})
	if err != nil {
		return nil, err
	}
	info := newBootVolumeInfo(resp.BootVolume)
	return &info, nil
}

// FileSystemInfo is the reshaped form of a file system.
type FileSystemInfo struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	CompartmentID      string `json:"compartment_id"`
	AvailabilityDomain string `json:"availability_domain"`
	LifecycleState     string `json:"lifecycle_state"`
	TimeCreated        string `json:"time_created"`
	MeteredBytes       *int64 `json:"metered_bytes"`
	IsCloneParent      bool   `json:"is_clone_parent"`
	IsHydrated         bool   `json:"is_hydrated"`
	LifecycleDetails   string `json:"lifecycle_details,omitempty"`
	KmsKeyID           string `json:"kms_key_id,omitempty"`
}

// ListFileSystems lists file systems in a compartment and availability
// domain.
func ListFileSystems(ctx context.Context, client FileStorageAPI, compartmentID, availabilityDomain string) ([]FileSystemInfo, error) {
	fileSystems := []FileSystemInfo{}
	req := filestorage.ListFileSystemsRequest{
		CompartmentId:      common.String(compartmentID),
		AvailabilityDomain: common.String(availabilityDomain),
	}
	for {
		resp, err := client.ListFileSystems(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, fs := range resp.Items {
			fileSystems = append(fileSystems, FileSystemInfo{
				ID:                 str(fs.Id),
				DisplayName:        str(fs.DisplayName),
				CompartmentID:      str(fs.CompartmentId),
				AvailabilityDomain: str(fs.AvailabilityDomain),
				LifecycleState:     string(fs.LifecycleState),
				TimeCreated:        timeStr(fs.TimeCreated),
				MeteredBytes:       fs.MeteredBytes,
				IsCloneParent:      boolVal(fs.IsCloneParent),
				IsHydrated:         boolVal(fs.IsHydrated),
				LifecycleDetails:   str(fs.LifecycleDetails),
				KmsKeyID:           str(fs.KmsKeyId),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return fileSystems, nil
}

// GetFileSystem returns a single file system.
func GetFileSystem(ctx context.Context, client FileStorageAPI, fileSystemID string) (*FileSystemInfo, error) {
	resp, err := client.GetFileSystem(ctx, filestorage.GetFileSystemRequest{FileSystemId: common.String(fileSystemID)})
	if err != nil {
		return nil, err
	}
	fs := resp.FileSystem
	return &FileSystemInfo{
		ID:                 str(fs.Id),
		DisplayName:        str(fs.DisplayName),
		CompartmentID:      str(fs.CompartmentId),
		AvailabilityDomain: str(fs.AvailabilityDomain),
		LifecycleState:     string(fs.LifecycleState),
		TimeCreated:        timeStr(fs.TimeCreated),
		MeteredBytes:       fs.MeteredBytes,
		IsCloneParent:      boolVal(fs.IsCloneParent),
		IsHydrated:         boolVal(fs.IsHydrated),
		LifecycleDetails:   str(fs.LifecycleDetails),
		KmsKeyID:           str(fs.KmsKeyId),
	}, nil
}
