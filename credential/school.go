// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package credential

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// RegisterSchoolNode - register the caller as a school node under a DID
func (d *credentialData) RegisterSchoolNode(ctx ledger.Context, did string, name string, serviceEndpoint string, nodeID string) (*ledger.Result, error) {
	key := []byte(did)
	if d.poolSchools.Has(key) {
		return nil, fault.SchoolAlreadyRegistered
	}

	school := SchoolNode{
		DID:             did,
		Name:            name,
		Address:         ctx.Caller,
		NodeID:          nodeID,
		ServiceEndpoint: serviceEndpoint,
		Active:          true,
		RegisteredAt:    ctx.Seconds(),
	}
	d.storeSchool(&school)

	audit.Get().Record(ctx, "register_school", fmt.Sprintf("did: %s", did))

	return ledger.NewResult("register_school_node").
		Add("did", did).
		Add("address", ctx.Caller), nil
}

// UpdateSchoolNode - patch registration fields
//
// nil fields are left unchanged; only the registering address may
// update
func (d *credentialData) UpdateSchoolNode(ctx ledger.Context, did string, name *string, serviceEndpoint *string, active *bool) (*ledger.Result, error) {
	school, err := d.GetSchoolNode(did)
	if nil != err {
		return nil, err
	}
	if school.Address != ctx.Caller {
		return nil, fault.NotSchoolOwner
	}

	if nil != name {
		school.Name = *name
	}
	if nil != serviceEndpoint {
		school.ServiceEndpoint = *serviceEndpoint
	}
	if nil != active {
		school.Active = *active
	}
	d.storeSchool(school)

	audit.Get().Record(ctx, "update_school", fmt.Sprintf("did: %s", did))

	return ledger.NewResult("update_school_node").Add("did", did), nil
}

// DeactivateSchoolNode - permanently clear the active flag
func (d *credentialData) DeactivateSchoolNode(ctx ledger.Context, did string) (*ledger.Result, error) {
	school, err := d.GetSchoolNode(did)
	if nil != err {
		return nil, err
	}
	if school.Address != ctx.Caller {
		return nil, fault.NotSchoolOwner
	}
	if !school.Active {
		return nil, fault.SchoolAlreadyDeactivated
	}

	school.Active = false
	d.storeSchool(school)

	audit.Get().Record(ctx, "deactivate_school", fmt.Sprintf("did: %s", did))

	return ledger.NewResult("deactivate_school_node").Add("did", did), nil
}

// GetSchoolNode - point lookup by DID
func (d *credentialData) GetSchoolNode(did string) (*SchoolNode, error) {
	buffer := d.poolSchools.Get([]byte(did))
	if nil == buffer {
		return nil, fault.SchoolNotFound
	}
	var school SchoolNode
	err := json.Unmarshal(buffer, &school)
	if nil != err {
		return nil, err
	}
	return &school, nil
}

// ListSchoolNodes - all registrations, optionally active ones only
func (d *credentialData) ListSchoolNodes(activeOnly bool) ([]SchoolNode, error) {
	schools := []SchoolNode{}
	err := d.poolSchools.Map(func(key []byte, value []byte) error {
		var school SchoolNode
		err := json.Unmarshal(value, &school)
		if nil != err {
			return err
		}
		if !activeOnly || school.Active {
			schools = append(schools, school)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return schools, nil
}

func (d *credentialData) storeSchool(school *SchoolNode) {
	buffer, err := json.Marshal(school)
	logger.PanicIfError("credential.storeSchool", err)
	d.poolSchools.Put([]byte(school.DID), buffer)
}
