// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// caladanNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	caladanNamespace = "caladan"

	// 以下为当前使用的通用标签名。
	protocolLabelName = "protocol"
	reasonLabelName   = "reason"
)

// 解码失败原因标签的取值。
const (
	ReasonShortRead  = "short_read"
	ReasonBadScratch = "bad_scratch"
)

var (
	RequestsEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: caladanNamespace,
			Name:      "requests_encoded_total",
			Help:      "number of requests encoded per protocol",
		}, []string{protocolLabelName})

	RequestBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: caladanNamespace,
			Name:      "request_bytes_total",
			Help:      "bytes of encoded requests per protocol",
		}, []string{protocolLabelName})

	ResponsesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: caladanNamespace,
			Name:      "responses_decoded_total",
			Help:      "number of responses decoded per protocol",
		}, []string{protocolLabelName})

	ResponseBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: caladanNamespace,
			Name:      "response_bytes_total",
			Help:      "bytes of decoded responses per protocol",
		}, []string{protocolLabelName})

	DecodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: caladanNamespace,
			Name:      "decode_failures_total",
			Help:      "number of response decode failures per protocol and reason",
		}, []string{protocolLabelName, reasonLabelName})

	metricRegisterer prometheus.Registerer
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册当前定义的所有指标。
// 通常应在启动阶段调用一次。
func Register(r prometheus.Registerer) {
	r.MustRegister(RequestsEncoded)
	r.MustRegister(RequestBytes)
	r.MustRegister(ResponsesDecoded)
	r.MustRegister(ResponseBytes)
	r.MustRegister(DecodeFailures)
	metricRegisterer = r
}
