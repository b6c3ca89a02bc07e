package oci

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// UserCapabilities mirrors the console/API capability flags of a user.
type UserCapabilities struct {
	CanUseConsolePassword bool `json:"can_use_console_password"`
	CanUseAPIKeys         bool `json:"can_use_api_keys"`
	CanUseAuthTokens      bool `json:"can_use_auth_tokens"`
	CanUseSmtpCredentials bool `json:"can_use_smtp_credentials"`
}

// UserInfo is the reshaped form of an IAM user.
type UserInfo struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Email          string            `json:"email"`
	IsMfaActivated bool              `json:"is_mfa_activated"`
	LifecycleState string            `json:"lifecycle_state"`
	TimeCreated    string            `json:"time_created"`
	CompartmentID  string            `json:"compartment_id"`
	Capabilities   *UserCapabilities `json:"capabilities"`
}

func newUserInfo(user identity.User) UserInfo {
	info := UserInfo{
		ID:             str(user.Id),
		Name:           str(user.Name),
		Description:    str(user.Description),
		Email:          str(user.Email),
		IsMfaActivated: boolVal(user.IsMfaActivated),
		LifecycleState: string(user.LifecycleState),
		TimeCreated:    timeStr(user.TimeCreated),
		CompartmentID:  str(user.CompartmentId),
	}
	if user.Capabilities != nil {
		info.Capabilities = &UserCapabilities{
			CanUseConsolePassword: boolVal(user.Capabilities.CanUseConsolePassword),
			CanUseAPIKeys:         boolVal(user.Capabilities.CanUseApiKeys),
			CanUseAuthTokens:      boolVal(user.Capabilities.CanUseAuthTokens),
			CanUseSmtpCredentials: boolVal(user.Capabilities.CanUseSmtpCredentials),
		}
	}
	return info
}

// ListUsers lists all IAM users in a compartment.
func ListUsers(ctx context.Context, client IdentityAPI, compartmentID string) ([]UserInfo, error) {
	users := []UserInfo{}
	req := identity.ListUsersRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListUsers(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, user := range resp.Items {
			users = append(users, newUserInfo(user))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return users, nil
}

// GetUser returns a single IAM user.
func GetUser(ctx context.Context, client IdentityAPI, userID string) (*UserInfo, error) {
	resp, err := client.GetUser(ctx, identity.GetUserRequest{UserId: common.String(userID)})
	if err != nil {
		return nil, err
	}
	info := newUserInfo(resp.User)
	return &info, nil
}

// GroupInfo is the reshaped form of an IAM group.
type GroupInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	LifecycleState string `json:"lifecycle_state"`
	TimeCreated    string `json:"time_created"`
	CompartmentID  string `json:"compartment_id"`
}

func newGroupInfo(group identity.Group) GroupInfo {
	return GroupInfo{
		ID:             str(group.Id),
		Name:           str(group.Name),
		Description:    str(group.Description),
		LifecycleState: string(group.LifecycleState),
		TimeCreated:    timeStr(group.TimeCreated),
		CompartmentID:  str(group.CompartmentId),
	}
}

// ListGroups lists all IAM groups in a compartment.
func ListGroups(ctx context.Context, client IdentityAPI, compartmentID string) ([]GroupInfo, error) {
	groups := []GroupInfo{}
	req := identity.ListGroupsRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListGroups(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, group := range resp.Items {
			groups = append(groups, newGroupInfo(group))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return groups, nil
}

// GetGroup returns a single IAM group.
func GetGroup(ctx context.Context, client IdentityAPI, groupID string) (*GroupInfo, error) {
	resp, err := client.GetGroup(ctx, identity.GetGroupRequest{GroupId: common.String(groupID)})
	if err != nil {
		return nil, err
	}
	info := newGroupInfo(resp.Group)
	return &info, nil
}

// PolicyInfo is the reshaped form of an IAM policy.
type PolicyInfo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Statements     []string `json:"statements"`
	VersionDate    string   `json:"version_date,omitempty"`
	LifecycleState string   `json:"lifecycle_state"`
	TimeCreated    string   `json:"time_created"`
	CompartmentID  string   `json:"compartment_id"`
}

func newPolicyInfo(policy identity.Policy) PolicyInfo {
	return PolicyInfo{
		ID:             str(policy.Id),
		Name:           str(policy.Name),
		Description:    str(policy.Description),
		Statements:     policy.Statements,
		VersionDate:    dateStr(policy.VersionDate),
		LifecycleState: string(policy.LifecycleState),
		TimeCreated:    timeStr(policy.TimeCreated),
		CompartmentID:  str(policy.CompartmentId),
	}
}

// ListPolicies lists all IAM policies in a compartment.
func ListPolicies(ctx context.Context, client IdentityAPI, compartmentID string) ([]PolicyInfo, error) {
	policies := []PolicyInfo{}
	req := identity.ListPoliciesRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListPolicies(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, policy := range resp.Items {
			policies = append(policies, newPolicyInfo(policy))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return policies, nil
}

// GetPolicy returns a single IAM policy.
func GetPolicy(ctx context.Context, client IdentityAPI, policyID string) (*PolicyInfo, error) {
	resp, err := client.GetPolicy(ctx, identity.GetPolicyRequest{PolicyId: common.String(policyID)})
	if err != nil {
		return nil, err
	}
	info := newPolicyInfo(resp.Policy)
	return &info, nil
}

// DynamicGroupInfo is the reshaped form of a dynamic group.
type DynamicGroupInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MatchingRule   string `json:"matching_rule"`
	LifecycleState string `json:"lifecycle_state"`
	TimeCreated    string `json:"time_created"`
	CompartmentID  string `json:"compartment_id"`
}

func newDynamicGroupInfo(group identity.DynamicGroup) DynamicGroupInfo {
	return DynamicGroupInfo{
		ID:             str(group.Id),
		Name:           str(group.Name),
		Description:    str(group.Description),
		MatchingRule:   str(group.MatchingRule),
		LifecycleState: string(group.LifecycleState),
		TimeCreated:    timeStr(group.TimeCreated),
		CompartmentID:  str(group.CompartmentId),
	}
}

// ListDynamicGroups lists all dynamic groups in a compartment.
func ListDynamicGroups(ctx context.Context, client IdentityAPI, compartmentID string) ([]DynamicGroupInfo, error) {
	groups := []DynamicGroupInfo{}
	req := identity.ListDynamicGroupsRequest{CompartmentId: common.String(compartmentID)}
	for {
		resp, err := client.ListDynamicGroups(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, group := range resp.Items {
			groups = append(groups, newDynamicGroupInfo(group))
		}
		if resp.OpcNextPage == nil {
			break
		}
		req.Page = resp.OpcNextPage
	}
	return groups, nil
}

// GetDynamicGroup returns a single dynamic group.
func GetDynamicGroup(ctx context.Context, client IdentityAPI, dynamicGroupID string) (*DynamicGroupInfo, error) {
	resp, err := client.GetDynamicGroup(ctx, identity.GetDynamicGroupRequest{DynamicGroupId: common.String(dynamicGroupID)})
	if err != nil {
		return nil, err
	}
	info := newDynamicGroupInfo(resp.DynamicGroup)
	return &info, nil
}
