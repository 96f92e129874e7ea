// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 EduChain Vietnam
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/educhain-vn/eduledgerd/audit"
	"github.com/educhain-vn/eduledgerd/fault"
	"github.com/educhain-vn/eduledgerd/ledger"
)

// UpdateCourseProgress - upsert progress percentage for one student
// and course
//
// completion state and any certificate link are preserved
func (d *marketData) UpdateCourseProgress(ctx ledger.Context, student string, courseID string, progress uint8) (*ledger.Result, error) {
	if progress > 100 {
		return nil, fault.ProgressOutOfRange
	}

	progression, err := d.loadProgression(student, courseID)
	if fault.ProgressionNotFound == err {
		progression = &Progression{
			Student:  student,
			CourseID: courseID,
		}
	} else if nil != err {
		return nil, err
	}

	progression.Progress = progress
	d.storeProgression(progression)

	audit.Get().Record(ctx, "update_course_progress", fmt.Sprintf("student: %s, course: %s, progress: %d", student, courseID, progress))

	return ledger.NewResult("update_course_progress").
		Add("student", student).
		Add("course_id", courseID).
		Add("progress", strconv.Itoa(int(progress))), nil
}

// CompleteCourse - mark a fully progressed course completed
//
// requires progress at 100; completion is permanent
func (d *marketData) CompleteCourse(ctx ledger.Context, student string, courseID string) (*ledger.Result, error) {
	progression, err := d.GetCourseProgress(student, courseID)
	if nil != err {
		return nil, err
	}
	if progression.Completed {
		return nil, fault.CourseAlreadyCompleted
	}
	if 100 != progression.Progress {
		return nil, fault.ProgressNotComplete
	}

	progression.Completed = true
	progression.CompletionDate = ctx.Seconds()
	d.storeProgression(progression)

	audit.Get().Record(ctx, "complete_course", fmt.Sprintf("student: %s, course: %s", student, courseID))

	return ledger.NewResult("complete_course").
		Add("student", student).
		Add("course_id", courseID), nil
}

// GetCourseProgress - progression for one student and course
//
// a missing record reads as zero progress, not completed; this
// default stands in for students who have not started yet
func (d *marketData) GetCourseProgress(student string, courseID string) (*Progression, error) {
	progression, err := d.loadProgression(student, courseID)
	if fault.ProgressionNotFound == err {
		return &Progression{
			Student:   student,
			CourseID:  courseID,
			Progress:  0,
			Completed: false,
		}, nil
	} else if nil != err {
		return nil, err
	}
	return progression, nil
}

func (d *marketData) loadProgression(student string, courseID string) (*Progression, error) {
	buffer := d.poolProgressions.Get(progressionKey(student, courseID))
	if nil == buffer {
		return nil, fault.ProgressionNotFound
	}
	var progression Progression
	err := json.Unmarshal(buffer, &progression)
	if nil != err {
		return nil, err
	}
	return &progression, nil
}

func (d *marketData) storeProgression(progression *Progression) {
	buffer, err := json.Marshal(progression)
	logger.PanicIfError("market.storeProgression", err)
	d.poolProgressions.Put(progressionKey(progression.Student, progression.CourseID), buffer)
}
