// Copyright 2024, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/cmd"
)

func main() {
	// Interrupting cancels the running operation; the automation API then stops the engine.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, cleanup := cmd.NewIBMCloudBasicCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		_, err = fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		contract.IgnoreError(err)
		cleanup()
		stop()
		os.Exit(1)
	}
	cleanup()
}
