// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/currency"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// MintCourse - list a new course; the caller is creator and first owner
func (d *marketData) MintCourse(ctx ledger.Context, id string, metadata string, price uint64) (*ledger.Result, error) {
	if d.poolCourses.Has([]byte(id)) {
		return nil, fault.CourseAlreadyExists
	}

	course := Course{
		ID:       id,
		Creator:  ctx.Caller,
		Owner:    ctx.Caller,
		Metadata: metadata,
		Price:    price,
		Sold:     false,
	}
	d.storeCourse(&course)

	audit.Get().Record(ctx, "mint_course_nft", id)

	return ledger.NewResult("mint_course_nft").Add("id", id), nil
}

// BuyCourse - purchase a listed course with attached eVND
//
// the attached amount must cover the price; the creator receives the
// price less the scholarship fund fee
func (d *marketData) BuyCourse(ctx ledger.Context, id string) (*ledger.Result, error) {
	course, err := d.GetCourse(id)
	if nil != err {
		return nil, err
	}
	if course.Sold {
		return nil, fault.CourseAlreadySold
	}

	sent := ctx.Sent(currency.EVND)
	if sent < course.Price {
		return nil, fault.InsufficientPayment
	}

	fee := course.Price * FeePercent / 100
	payout := course.Price - fee

	course.Owner = ctx.Caller
	course.Sold = true
	d.storeCourse(course)

	audit.Get().Record(ctx, "buy_course_nft", id)

	return ledger.NewResult("buy_course_nft").
		Add("id", id).
		Send(course.Creator, payout, currency.EVND).
		Send(ScholarshipFund, fee, currency.EVND), nil
}

// GetCourse - point lookup by course id
func (d *marketData) GetCourse(id string) (*Course, error) {
	buffer := d.poolCourses.Get([]byte(id))
	if nil == buffer {
		return nil, fault.CourseNotFound
	}
	var course Course
	err := json.Unmarshal(buffer, &course)
	if nil != err {
		return nil, err
	}
	return &course, nil
}

// ListCourses - every listed course in ascending id order
func (d *marketData) ListCourses() ([]Course, error) {
	courses := []Course{}
	err := d.poolCourses.Map(func(key []byte, value []byte) error {
		var course Course
		err := json.Unmarshal(value, &course)
		if nil != err {
			return err
		}
		courses = append(courses, course)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return courses, nil
}

func (d *marketData) storeCourse(course *Course) {
	buffer, err := json.Marshal(course)
	logger.PanicIfError("market.storeCourse", err)
	d.poolCourses.Put([]byte(course.ID), buffer)
}
