package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/database"
)

// DatabaseInfo is the reshaped form of a database inside a DB system.
type DatabaseInfo struct {
	ID             string `json:"id"`
	DbName         string `json:"db_name"`
	CompartmentID  string `json:"compartment_id"`
	CharacterSet   string `json:"character_set"`
	NcharacterSet  string `json:"ncharacter_set"`
	DbWorkload     string `json:"db_workload"`
	PdbName        string `json:"pdb_name,omitempty"`
	LifecycleState string `json:"lifecycle_state"`
	TimeCreated    string `json:"time_created"`
	DbUniqueName   string `json:"db_unique_name"`
	DbSystemID     string `json:"db_system_id,omitempty"`
	VmClusterID    string `json:"vm_cluster_id,omitempty"`
	KmsKeyID       string `json:"kms_key_id,omitempty"`
	VaultID        string `json:"vault_id,omitempty"`
}

// ListDatabases lists databases in a compartment, optionally filtered by
// DB system.
func ListDatabases(ctx context.Context, client DatabaseAPI, compartmentID, dbSystemID string) ([]DatabaseInfo, error) {
	req := database.ListDatabasesRequest{CompartmentId: common.String(compartmentID)}
	if dbSystemID != "" {
		req.SystemId = common.String(dbSystemID)
	}

	databases := []DatabaseInfo{}
	for {
		resp, err := client.ListDatabases(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, db := range resp.Items {
			databases = append(databases, DatabaseInfo{
				ID:             str(db.Id),
				DbName:         str(db.DbName),
				CompartmentID:  str(db.CompartmentId),
				CharacterSet:   str(db.CharacterSet),
				NcharacterSet:  str(db.NcharacterSet),
				DbWorkload:     str(db.DbWorkload),
				PdbName:        str(db.PdbName),
				LifecycleState: string(db.LifecycleState),
				TimeCreated:    timeStr(db.TimeCreated),
				DbUniqueName:   str(db.DbUniqueName),
				DbSystemID:     str(db.DbSystemId),
				VmClusterID:    str(db.VmClusterId),
				KmsKeyID:       str(db.KmsKeyId),
				VaultID:        str(db.VaultId),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return databases, nil
}

// GetDatabase returns a single database.
func GetDatabase(ctx context.Context, client DatabaseAPI, databaseID string) (*DatabaseInfo, error) {
	resp, err := client.GetDatabase(ctx, database.GetDatabaseRequest{DatabaseId: common.String(databaseID)})
	if err != nil {
		return nil, err
	}
	db := resp.Database
	return &DatabaseInfo{
		ID:             str(db.Id),
		DbName:         str(db.DbName),
		CompartmentID:  str(db.CompartmentId),
		CharacterSet:   str(db.CharacterSet),
		NcharacterSet:  str(db.NcharacterSet),
		DbWorkload:     str(db.DbWorkload),
		PdbName:        str(db.PdbName),
		LifecycleState: string(db.LifecycleState),
		TimeCreated:    timeStr(db.TimeCreated),
		DbUniqueName:   str(db.DbUniqueName),
		DbSystemID:     str(db.DbSystemId),
		VmClusterID:    str(db.VmClusterId),
		KmsKeyID:       str(db.KmsKeyId),
		VaultID:        str(db.VaultId),
	}, nil
}

// ConnectionStrings carries the service-level connect descriptors of an
// autonomous database.
type ConnectionStrings struct {
	High      string `json:"high,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Low       string `json:"low,omitempty"`
	Dedicated string `json:"dedicated,omitempty"`
}

// ConnectionUrls carries the tool URLs of an autonomous database.
type ConnectionUrls struct {
	SqlDevWebURL                     string `json:"sql_dev_web_url,omitempty"`
	ApexURL                          string `json:"apex_url,omitempty"`
	MachineLearningUserManagementURL string `json:"machine_learning_user_management_url,omitempty"`
	GraphStudioURL                   string `json:"graph_studio_url,omitempty"`
	MongoDbURL                       string `json:"mongo_db_url,omitempty"`
}

// AutonomousDatabaseInfo is the reshaped form of an autonomous database.
type AutonomousDatabaseInfo struct {
	ID                            string             `json:"id"`
	DbName                        string             `json:"db_name"`
	DisplayName                   string             `json:"display_name"`
	CompartmentID                 string             `json:"compartment_id"`
	LifecycleState                string             `json:"lifecycle_state"`
	TimeCreated                   string             `json:"time_created"`
	CpuCoreCount                  *int               `json:"cpu_core_count"`
	DataStorageSizeInTBs          *int               `json:"data_storage_size_in_tbs"`
	IsFreeTier                    bool               `json:"is_free_tier"`
	IsAutoScalingEnabled          bool               `json:"is_auto_scaling_enabled"`
	DbWorkload                    string             `json:"db_workload"`
	DbVersion                     string             `json:"db_version"`
	LicenseModel                  string             `json:"license_model"`
	IsDedicated                   bool               `json:"is_dedicated"`
	AutonomousContainerDatabaseID string             `json:"autonomous_container_database_id,omitempty"`
	IsAccessControlEnabled        bool               `json:"is_access_control_enabled"`
	WhitelistedIps                []string           `json:"whitelisted_ips,omitempty"`
	IsDataGuardEnabled            bool               `json:"is_data_guard_enabled"`
	SubnetID                      string             `json:"subnet_id,omitempty"`
	NsgIds                        []string           `json:"nsg_ids,omitempty"`
	PrivateEndpoint               string             `json:"private_endpoint,omitempty"`
	PrivateEndpointLabel          string             `json:"private_endpoint_label,omitempty"`
	ConnectionStrings             *ConnectionStrings `json:"connection_strings,omitempty"`
	ConnectionUrls                *ConnectionUrls    `json:"connection_urls,omitempty"`
}

// ListAutonomousDatabases lists autonomous databases in a compartment.
func ListAutonomousDatabases(ctx context.Context, client DatabaseAPI, compartmentID string) ([]AutonomousDatabaseInfo, error) {
	adbs := []AutonomousDatabaseInfo{}
	req := database.ListAutonomousDatabasesRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListAutonomousDatabases(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, adb := range resp.Items {
			adbs = append(adbs, AutonomousDatabaseInfo{
				ID:                            str(adb.Id),
				DbName:                        str(adb.DbName),
				DisplayName:                   str(adb.DisplayName),
				CompartmentID:                 str(adb.CompartmentId),
				LifecycleState:                string(adb.LifecycleState),
				TimeCreated:                   timeStr(adb.TimeCreated),
				CpuCoreCount:                  adb.CpuCoreCount,
				DataStorageSizeInTBs:          adb.DataStorageSizeInTBs,
				IsFreeTier:                    boolVal(adb.IsFreeTier),
				IsAutoScalingEnabled:          boolVal(adb.IsAutoScalingEnabled),
				DbWorkload:                    string(adb.DbWorkload),
				DbVersion:                     str(adb.DbVersion),
				LicenseModel:                  string(adb.LicenseModel),
				IsDedicated:                   boolVal(adb.IsDedicated),
				AutonomousContainerDatabaseID: str(adb.AutonomousContainerDatabaseId),
				IsAccessControlEnabled:        boolVal(adb.IsAccessControlEnabled),
				WhitelistedIps:                adb.WhitelistedIps,
				IsDataGuardEnabled:            boolVal(adb.IsDataGuardEnabled),
				SubnetID:                      str(adb.SubnetId),
				NsgIds:                        adb.NsgIds,
				PrivateEndpoint:               str(adb.PrivateEndpoint),
				PrivateEndpointLabel:          str(adb.PrivateEndpointLabel),
			})
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return adbs, nil
}

// GetAutonomousDatabase returns a single autonomous database including
// its connection strings and URLs.
func GetAutonomousDatabase(ctx context.Context, client DatabaseAPI, autonomousDatabaseID string) (*AutonomousDatabaseInfo, error) {
	resp, err := client.GetAutonomousDatabase(ctx, database.GetAutonomousDatabaseRequest{
		AutonomousDatabaseId: common.String(autonomousDatabaseID),
	})
	if err != nil {
		return nil, err
	}
	adb := resp.AutonomousDatabase

	info := &AutonomousDatabaseInfo{
		ID:                            str(adb.Id),
		DbName:                        str(adb.DbName),
		DisplayName:                   str(adb.DisplayName),
		CompartmentID:                 str(adb.CompartmentId),
		LifecycleState:                string(adb.LifecycleState),
		TimeCreated:                   timeStr(adb.TimeCreated),
		CpuCoreCount:                  adb.CpuCoreCount,
		DataStorageSizeInTBs:          adb.DataStorageSizeInTBs,
		IsFreeTier:                    boolVal(adb.IsFreeTier),
		IsAutoScalingEnabled:          boolVal(adb.IsAutoScalingEnabled),
		DbWorkload:                    string(adb.DbWorkload),
		DbVersion:                     str(adb.DbVersion),
		LicenseModel:                  string(adb.LicenseModel),
		IsDedicated:                   boolVal(adb.IsDedicated),
		AutonomousContainerDatabaseID: str(adb.AutonomousContainerDatabaseId),
		IsAccessControlEnabled:        boolVal(adb.IsAccessControlEnabled),
		WhitelistedIps:                adb.WhitelistedIps,
		IsDataGuardEnabled:            boolVal(adb.IsDataGuardEnabled),
		SubnetID:                      str(adb.SubnetId),
		NsgIds:                        adb.NsgIds,
		PrivateEndpoint:               str(adb.PrivateEndpoint),
		PrivateEndpointLabel:          str(adb.PrivateEndpointLabel),
	}
	if adb.ConnectionStrings != nil {
		info.ConnectionStrings = &ConnectionStrings{
			High:      str(adb.ConnectionStrings.High),
			Medium:    str(adb.ConnectionStrings.Medium),
			Low:       str(adb.ConnectionStrings.Low),
			Dedicated: str(adb.ConnectionStrings.Dedicated),
		}
	}
	if adb.ConnectionUrls != nil {
		info.ConnectionUrls = &ConnectionUrls{
			SqlDevWebURL:                     str(adb.ConnectionUrls.SqlDevWebUrl),
			ApexURL:                          str(adb.ConnectionUrls.ApexUrl),
			MachineLearningUserManagementURL: str(adb.ConnectionUrls.MachineLearningUserManagementUrl),
			GraphStudioURL:                   str(adb.ConnectionUrls.GraphStudioUrl),
			MongoDbURL:                       str(adb.ConnectionUrls.MongoDbUrl),
		}
	}
	return info, nil
}
