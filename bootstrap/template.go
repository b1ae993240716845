// Package bootstrap carries the CloudFormation template that deploys the
// provisioner: the Lambda function, its execution role, and a
// Custom::ServiceLinkedRole resource wired to it.
package bootstrap

// CFTemplate is the deployment template. The function binary is expected as
// a zip at s3://$CodeBucket/$CodeKey, built for provided.al2023 with the
// binary named "bootstrap".
const CFTemplate = `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Description": "Idempotently creates an IAM service-linked role via a custom resource",
  "Parameters": {
    "AWSServiceName": {
      "Type": "String",
      "Description": "Service identifier whose service-linked role should exist",
      "Default": "inspector.amazonaws.com"
    },
    "CodeBucket": {
      "Type": "String",
      "Description": "S3 bucket holding the function zip"
    },
    "CodeKey": {
      "Type": "String",
      "Description": "S3 key of the function zip"
    }
  },
  "Resources": {
    "FunctionRole": {
      "Type": "AWS::IAM::Role",
      "Properties": {
        "AssumeRolePolicyDocument": {
          "Version": "2012-10-17",
          "Statement": [
            {
              "Effect": "Allow",
              "Principal": {"Service": "lambda.amazonaws.com"},
              "Action": "sts:AssumeRole"
            }
          ]
        },
        "ManagedPolicyArns": [
          "arn:aws:iam::aws:policy/service-role/AWSLambdaBasicExecutionRole"
        ],
        "Policies": [
          {
            "PolicyName": "EnsureServiceLinkedRole",
            "PolicyDocument": {
              "Version": "2012-10-17",
              "Statement": [
                {
                  "Effect": "Allow",
                  "Action": ["iam:GetRole", "iam:CreateServiceLinkedRole"],
                  "Resource": "*"
                }
              ]
            }
          }
        ]
      }
    },
    "EnsureServiceLinkedRoleFunction": {
      "Type": "AWS::Lambda::Function",
      "Properties": {
        "Description": "Ensures an IAM service-linked role exists and reports its identity",
        "Runtime": "provided.al2023",
        "Handler": "bootstrap",
        "Timeout": 30,
        "MemorySize": 128,
        "Role": {"Fn::GetAtt": ["FunctionRole", "Arn"]},
        "Code": {
          "S3Bucket": {"Ref": "CodeBucket"},
          "S3Key": {"Ref": "CodeKey"}
        }
      }
    },
    "ServiceLinkedRole": {
      "Type": "Custom::ServiceLinkedRole",
      "Properties": {
        "ServiceToken": {"Fn::GetAtt": ["EnsureServiceLinkedRoleFunction", "Arn"]},
        "AWSServiceName": {"Ref": "AWSServiceName"}
      }
    }
  },
  "Outputs": {
    "RoleArn": {
      "Description": "ARN of the service-linked role",
      "Value": {"Fn::GetAtt": ["ServiceLinkedRole", "Arn"]}
    },
    "RoleId": {
      "Description": "RoleId of the service-linked role",
      "Value": {"Fn::GetAtt": ["ServiceLinkedRole", "RoleId"]}
    }
  }
}
`
