// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/printworks/printbot/internal/doctor"
	"github.com/printworks/printbot/internal/workflows/notify"
	"github.com/printworks/printbot/pkg/security"

	"github.com/automa-saga/automa"
	"github.com/automa-saga/logx"
	"github.com/joomcode/errorx"
)

// CheckPrivilegesStep validates that the current user has superuser privileges
func CheckPrivilegesStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-privileges").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			current, err := user.Current()
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.Wrap(err, "failed to get current user")))
			}

			if current.Uid != "0" {
				return automa.FailureReport(stp,
					automa.WithError(
						errorx.IllegalState.New("requires superuser privilege").
							WithProperty(doctor.ErrPropertyResolution,
								fmt.Sprintf("Run the command with 'sudo' or as root user: `sudo %s`",
									strings.Join(os.Args, " ")))))
			}

			logx.As().Info().Msg("Superuser privilege validated")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting privilege validation")
			return ctx, nil

		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Privilege validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Privilege validation step completed successfully")
		})
}

// CheckServiceAccountStep validates that the service user and group exist with
// the expected ids. It never creates the account itself; the failure carries
// the exact groupadd/useradd (or groupmod/usermod) commands so the operator
// stays in control of principal management on the host.
func CheckServiceAccountStep() automa.Builder {
	return automa.NewStepBuilder().WithId("validate-service-account").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			name := security.ServiceAccountUserName()
			uid := security.ServiceAccountUserId()
			groupName := security.ServiceAccountGroupName()
			gid := security.ServiceAccountGroupId()

			svcUser, userErr := user.Lookup(name)
			svcGroup, groupErr := user.LookupGroup(groupName)
			userExists := userErr == nil
			groupExists := groupErr == nil

			meta := map[string]string{
				"user_exists":  strconv.FormatBool(userExists),
				"group_exists": strconv.FormatBool(groupExists),
			}

			// Group fixes come first: useradd -g needs the group in place.
			var problems []string
			var fixes []string

			switch {
			case !groupExists:
				problems = append(problems, fmt.Sprintf("service group '%s' does not exist", groupName))
				fixes = append(fixes, fmt.Sprintf("sudo groupadd -g %s %s", gid, groupName))
			case svcGroup.Gid != gid:
				meta["group_id_mismatch"] = "true"
				meta["expected_group_id"] = gid
				meta["actual_group_id"] = svcGroup.Gid
				problems = append(problems,
					fmt.Sprintf("service group '%s' exists with GID %s, expected %s", groupName, svcGroup.Gid, gid))
				fixes = append(fixes, fmt.Sprintf("sudo groupmod -g %s %s", gid, groupName))
			}

			switch {
			case !userExists:
				problems = append(problems, fmt.Sprintf("service user '%s' does not exist", name))
				fixes = append(fixes,
					fmt.Sprintf("sudo useradd -u %s -g %s -M -s /usr/sbin/nologin %s", uid, gid, name))
			case svcUser.Uid != uid:
				meta["user_id_mismatch"] = "true"
				meta["expected_user_id"] = uid
				meta["actual_user_id"] = svcUser.Uid
				problems = append(problems,
					fmt.Sprintf("service user '%s' exists with UID %s, expected %s", name, svcUser.Uid, uid))
				fixes = append(fixes, fmt.Sprintf("sudo usermod -u %s -g %s %s", uid, gid, name))
			}

			if len(problems) > 0 {
				instructions := "Create or correct the service account:\n\n"
				for _, fix := range fixes {
					instructions += "  " + fix + "\n"
				}
				instructions += "\nThe account gets no home directory and no interactive login;" +
					" the service runs from its install tree.\n" +
					"If you change the id of an existing account, update file ownerships to match."
				meta["instructions"] = instructions

				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.New("%s", strings.Join(problems, "; ")).
						WithProperty(doctor.ErrPropertyResolution, instructions)),
					automa.WithMetadata(meta))
			}

			meta["user_id"] = uid
			meta["group_id"] = gid

			logx.As().Info().
				Str("user", name).
				Str("user_id", uid).
				Str("group", groupName).
				Str("group_id", gid).
				Msg("Service user and group validated")

			return automa.SuccessReport(stp, automa.WithMetadata(meta))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Starting service account validation")
			return ctx, nil
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Service account validation failed")
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Service account validation step completed successfully")
		})
}
